package engrave

import "math"

// RoseConfig generates one full rotation of a rose engine lathe: a circle of
// BaseRadius whose radius is modulated by a [Rosette] scaled to Amplitude.
//
// An optional secondary rosette is added on top of the first, the way a
// second cam bar stacks on a real machine. FrequencyScale compresses or
// stretches the rosette pattern around the circumference; zero means 1.
type RoseConfig struct {
	BaseRadius float64 // mm, > 0
	Amplitude  float64 // mm, ≥ 0, with total amplitude < BaseRadius
	Resolution int     // ≥ 3 samples per rotation
	Phase      float64 // radians, rotates the rosette against the work
	Rosette    Rosette

	FrequencyScale float64

	SecondaryRosette   Rosette
	SecondaryAmplitude float64 // mm, ≥ 0

	Center Point

	// Depth scales the groove depth on export, in (0, 1]. Zero means full
	// depth.
	Depth float64
}

// Validate checks every field against its documented domain.
func (c RoseConfig) Validate() error {
	if math.IsNaN(c.BaseRadius) || math.IsInf(c.BaseRadius, 0) || c.BaseRadius <= 0 {
		return invalidf("base_radius", "must be a positive finite value, got %g", c.BaseRadius)
	}
	if math.IsNaN(c.Amplitude) || math.IsInf(c.Amplitude, 0) || c.Amplitude < 0 {
		return invalidf("amplitude", "must be non-negative and finite, got %g", c.Amplitude)
	}
	if math.IsNaN(c.SecondaryAmplitude) || math.IsInf(c.SecondaryAmplitude, 0) || c.SecondaryAmplitude < 0 {
		return invalidf("secondary_amplitude", "must be non-negative and finite, got %g", c.SecondaryAmplitude)
	}
	if c.Amplitude+c.SecondaryAmplitude >= c.BaseRadius {
		return invalidf("amplitude", "total modulation %g must stay below base radius %g",
			c.Amplitude+c.SecondaryAmplitude, c.BaseRadius)
	}
	if c.Resolution < 3 {
		return invalidf("resolution", "must be at least 3, got %d", c.Resolution)
	}
	if c.Rosette == nil {
		return invalidf("rosette", "must not be nil")
	}
	if c.SecondaryAmplitude > 0 && c.SecondaryRosette == nil {
		return invalidf("secondary_rosette", "must not be nil when secondary_amplitude is set")
	}
	if math.IsNaN(c.Phase) || math.IsInf(c.Phase, 0) {
		return invalidf("phase", "must be finite, got %g", c.Phase)
	}
	if math.IsNaN(c.FrequencyScale) || math.IsInf(c.FrequencyScale, 0) || c.FrequencyScale < 0 {
		return invalidf("frequency_scale", "must be non-negative and finite, got %g", c.FrequencyScale)
	}
	if math.IsNaN(c.Depth) || c.Depth < 0 || c.Depth > 1 {
		return invalidf("depth", "must be in [0, 1], got %g", c.Depth)
	}
	if c.Center.IsNaN() || c.Center.IsInf() {
		return invalidf("center", "must be finite, got %v", c.Center)
	}
	return nil
}

// Radius evaluates the modulated radius at the given angle.
func (c RoseConfig) Radius(angle float64) float64 {
	scale := c.FrequencyScale
	if scale == 0 {
		scale = 1
	}
	phase := scale*angle + c.Phase
	r := c.BaseRadius + c.Amplitude*c.Rosette.Eval(phase)
	if c.SecondaryAmplitude > 0 {
		r += c.SecondaryAmplitude * c.SecondaryRosette.Eval(phase)
	}
	return r
}

// AtPolar returns a copy of the configuration centered at the polar
// placement (angle in radians, distance in millimeters).
func (c RoseConfig) AtPolar(angle, distance float64) RoseConfig {
	c.Center = PolarPosition(angle, distance)
	return c
}

// AtClock returns a copy of the configuration centered at the clock
// placement.
func (c RoseConfig) AtClock(hour, minute int, distance float64) RoseConfig {
	c.Center = ClockPosition(hour, minute, distance)
	return c
}

// Generate samples one full rotation and returns it as a single closed
// path. Sample i sits at angle 2πi/Resolution; the seam point is not
// repeated.
func (c RoseConfig) Generate() ([]Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	pts := make([]Point, c.Resolution)
	for i := range pts {
		angle := 2.0 * math.Pi * float64(i) / float64(c.Resolution)
		r := c.Radius(angle)
		sin, cos := math.Sincos(angle)
		pts[i] = Pt(r*cos, r*sin, 0).Translate(Vec3(c.Center))
	}
	depth := c.Depth
	if depth == 0 {
		depth = 1
	}
	return []Path{{Layer: -1, Pass: -1, Depth: depth, Closed: true, Pts: pts}}, nil
}

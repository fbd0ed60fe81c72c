package engrave

import "math"

// SpiroKind selects the spirograph curve family.
type SpiroKind int

const (
	// Hypotrochoid traces a point attached to a circle rolling inside the
	// outer circle.
	Hypotrochoid SpiroKind = iota
	// Epitrochoid traces a point attached to a circle rolling around the
	// outside of the outer circle.
	Epitrochoid
)

func (k SpiroKind) String() string {
	switch k {
	case Hypotrochoid:
		return "hypotrochoid"
	case Epitrochoid:
		return "epitrochoid"
	default:
		return "unknown"
	}
}

// MinRadius and MaxRadius bound the overall pattern radius to the watch-face
// domain, in millimeters.
const (
	MinRadius = 26.0
	MaxRadius = 44.0
)

// SpiroConfig generates a spirograph curve. The zero value is not usable;
// populate the fields and call [SpiroConfig.Generate], which validates
// eagerly.
//
// The rolling circle's radius is RadiusRatio times OuterRadius, and the pen
// sits PointDistance rolling-circle radii from the rolling circle's center.
// PointDistance 1 puts the pen on the rim (a hypocycloid/epicycloid);
// values above 1 swing the pen outside the rim.
type SpiroConfig struct {
	OuterRadius   float64 // mm, in [MinRadius, MaxRadius]
	RadiusRatio   float64 // in (0, 1)
	PointDistance float64 // ≥ 0, in rolling-circle radii
	Rotations     int     // ≥ 1 full turns of the rolling center
	Resolution    int     // ≥ 3 samples per rotation
	Kind          SpiroKind
	Center        Point

	// WaveAmplitude and WaveFrequency add a vertical wave z = A·sin(f·θ)
	// along the curve. Zero amplitude disables the wave.
	WaveAmplitude float64
	WaveFrequency float64

	// DomeHeight projects the planar curve onto a spherical dome of the
	// given height over the outer radius, for curved watch crystals. Zero
	// disables the projection. Exclusive with the vertical wave.
	DomeHeight float64

	// Depth scales the groove depth on export, in (0, 1]. Zero means full
	// depth.
	Depth float64
}

// Validate checks every field against its documented domain.
func (c SpiroConfig) Validate() error {
	if math.IsNaN(c.OuterRadius) || c.OuterRadius < MinRadius || c.OuterRadius > MaxRadius {
		return invalidf("outer_radius", "must be in [%g, %g] mm, got %g", MinRadius, MaxRadius, c.OuterRadius)
	}
	if math.IsNaN(c.RadiusRatio) || c.RadiusRatio <= 0 || c.RadiusRatio >= 1 {
		return invalidf("radius_ratio", "must be in (0, 1), got %g", c.RadiusRatio)
	}
	if math.IsNaN(c.PointDistance) || math.IsInf(c.PointDistance, 0) || c.PointDistance < 0 {
		return invalidf("point_distance", "must be non-negative and finite, got %g", c.PointDistance)
	}
	if c.Rotations < 1 {
		return invalidf("rotations", "must be at least 1, got %d", c.Rotations)
	}
	if c.Resolution < 3 {
		return invalidf("resolution", "must be at least 3, got %d", c.Resolution)
	}
	if c.Kind != Hypotrochoid && c.Kind != Epitrochoid {
		return invalidf("kind", "unknown curve kind %d", int(c.Kind))
	}
	if c.WaveAmplitude != 0 {
		if math.IsNaN(c.WaveAmplitude) || math.IsInf(c.WaveAmplitude, 0) || c.WaveAmplitude < 0 {
			return invalidf("wave_amplitude", "must be non-negative and finite, got %g", c.WaveAmplitude)
		}
		if math.IsNaN(c.WaveFrequency) || math.IsInf(c.WaveFrequency, 0) || c.WaveFrequency <= 0 {
			return invalidf("wave_frequency", "must be a positive finite value, got %g", c.WaveFrequency)
		}
	}
	if c.DomeHeight != 0 {
		if math.IsNaN(c.DomeHeight) || math.IsInf(c.DomeHeight, 0) || c.DomeHeight < 0 {
			return invalidf("dome_height", "must be non-negative and finite, got %g", c.DomeHeight)
		}
		if c.WaveAmplitude != 0 {
			return invalidf("dome_height", "cannot combine a dome projection with a vertical wave")
		}
	}
	if math.IsNaN(c.Depth) || c.Depth < 0 || c.Depth > 1 {
		return invalidf("depth", "must be in [0, 1], got %g", c.Depth)
	}
	if c.Center.IsNaN() || c.Center.IsInf() {
		return invalidf("center", "must be finite, got %v", c.Center)
	}
	return nil
}

// AtPolar returns a copy of the configuration centered at the polar
// placement (angle in radians, distance in millimeters).
func (c SpiroConfig) AtPolar(angle, distance float64) SpiroConfig {
	c.Center = PolarPosition(angle, distance)
	return c
}

// AtClock returns a copy of the configuration centered at the clock
// placement, the way watch-face sub-patterns are positioned.
func (c SpiroConfig) AtClock(hour, minute int, distance float64) SpiroConfig {
	c.Center = ClockPosition(hour, minute, distance)
	return c
}

// pointAt evaluates the curve at parameter angle t, before centering.
func (c SpiroConfig) pointAt(t float64) Point {
	R := c.OuterRadius
	k := c.RadiusRatio
	d := c.PointDistance
	var x, y float64
	switch c.Kind {
	case Epitrochoid:
		f := 1.0/k + 1.0
		x = R * ((1.0+k)*math.Cos(t) - k*d*math.Cos(f*t))
		y = R * ((1.0+k)*math.Sin(t) - k*d*math.Sin(f*t))
	default:
		f := 1.0/k - 1.0
		x = R * ((1.0-k)*math.Cos(t) + k*d*math.Cos(f*t))
		y = R * ((1.0-k)*math.Sin(t) - k*d*math.Sin(f*t))
	}
	var z float64
	if c.DomeHeight > 0 {
		z = c.domeZ(math.Hypot(x, y))
	}
	if c.WaveAmplitude > 0 {
		z = c.WaveAmplitude * math.Sin(c.WaveFrequency*t)
	}
	return Pt(x, y, z).Translate(Vec3(c.Center))
}

// domeZ lifts a planar radius onto the dome sphere. The sphere passes
// through the outer-radius rim at z = 0 and peaks at z = DomeHeight above
// the center.
func (c SpiroConfig) domeZ(r float64) float64 {
	R := c.OuterRadius
	h := c.DomeHeight
	sphereR := (R*R + h*h) / (2.0 * h)
	if r >= sphereR {
		return h - sphereR
	}
	return math.Sqrt(sphereR*sphereR-r*r) - (sphereR - h)
}

// closes reports whether the curve returns to its start after Rotations
// turns, which happens exactly when the pen frequency completes a whole
// number of cycles.
func (c SpiroConfig) closes() bool {
	f := 1.0/c.RadiusRatio - 1.0
	if c.Kind == Epitrochoid {
		f = 1.0/c.RadiusRatio + 1.0
	}
	cycles := f * float64(c.Rotations)
	return math.Abs(cycles-math.Round(cycles)) < 1e-9
}

// Generate samples the curve and returns it as a single path of exactly
// Rotations × Resolution points, the first at parameter angle zero. The seam
// point of a closing curve is not repeated.
func (c SpiroConfig) Generate() ([]Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n := c.Rotations * c.Resolution
	closed := c.closes()
	pts := make([]Point, n)
	for i := range pts {
		t := 2.0 * math.Pi * float64(c.Rotations) * float64(i) / float64(n)
		pts[i] = c.pointAt(t)
	}
	depth := c.Depth
	if depth == 0 {
		depth = 1
	}
	return []Path{{Layer: -1, Pass: -1, Depth: depth, Closed: closed, Pts: pts}}, nil
}

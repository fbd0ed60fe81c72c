package engrave

import "math"

// Rosette is the cam profile of a rose engine: a pure function from a phase
// angle to a radial modulation value. Every implementation in this package
// returns a finite value in [-1, 1] for any finite phase; the modulation is
// scaled by the configuration's amplitude when a curve is generated.
type Rosette interface {
	// Eval returns the modulation at the given phase angle in radians.
	Eval(phase float64) float64
}

// MultiLobe is the classic rose engine cam: n identical rounded lobes around
// the circumference. The modulation is 2·|sin(n·θ/2)| − 1, spanning exactly
// [-1, 1] with n maxima and n minima per rotation.
type MultiLobe struct {
	Lobes int
}

var _ Rosette = MultiLobe{}

// NewMultiLobe returns a multi-lobe rosette with the given lobe count.
func NewMultiLobe(lobes int) (MultiLobe, error) {
	if lobes < 1 {
		return MultiLobe{}, invalidf("lobes", "must be at least 1, got %d", lobes)
	}
	return MultiLobe{Lobes: lobes}, nil
}

func (m MultiLobe) Eval(phase float64) float64 {
	return 2.0*math.Abs(math.Sin(phase*float64(m.Lobes)/2.0)) - 1.0
}

// Sinusoidal is a plain sine cam. Frequency is the number of wave cycles per
// rotation; Phase shifts the wave. The modulation spans [-1, 1].
//
// A Sinusoidal rosette with frequency 1 cuts a limaçon; with base radius
// near zero it degenerates to the tangent-circle "diamant" pattern.
type Sinusoidal struct {
	Frequency float64
	Phase     float64
}

var _ Rosette = Sinusoidal{}

// NewSinusoidal returns a sinusoidal rosette.
func NewSinusoidal(frequency, phase float64) (Sinusoidal, error) {
	if frequency <= 0 || math.IsInf(frequency, 0) || math.IsNaN(frequency) {
		return Sinusoidal{}, invalidf("frequency", "must be a positive finite value, got %g", frequency)
	}
	return Sinusoidal{Frequency: frequency, Phase: phase}, nil
}

func (s Sinusoidal) Eval(phase float64) float64 {
	return math.Sin(s.Frequency*phase + s.Phase)
}

// Elliptical models a round cam mounted off-axis, producing the radial
// profile of an ellipse with the given eccentricity in [0, 1). The profile
// of the unit ellipse is rescaled so the modulation spans [-1, 1]; zero
// eccentricity is a perfect circle and evaluates to a constant 0.
type Elliptical struct {
	Eccentricity float64
}

var _ Rosette = Elliptical{}

// NewElliptical returns an elliptical rosette.
func NewElliptical(eccentricity float64) (Elliptical, error) {
	if eccentricity < 0 || eccentricity >= 1 || math.IsNaN(eccentricity) {
		return Elliptical{}, invalidf("eccentricity", "must be in [0, 1), got %g", eccentricity)
	}
	return Elliptical{Eccentricity: eccentricity}, nil
}

func (e Elliptical) Eval(phase float64) float64 {
	if e.Eccentricity == 0 {
		return 0
	}
	// Polar radius of the unit ellipse (a = 1, b = √(1−e²)) about its
	// center ranges over [b, 1]; rescale to [-1, 1].
	b := math.Sqrt(1 - e.Eccentricity*e.Eccentricity)
	sin, cos := math.Sincos(phase)
	r := b / math.Sqrt(b*b*cos*cos+sin*sin)
	return 2.0*(r-b)/(1.0-b) - 1.0
}

// Epicycloid is a rose-curve cam: cos(ratio·θ) blended with a second
// harmonic weighted by PointDistance. PointDistance 0 is the pure rose curve
// r = cos(n·θ). The modulation is normalized to [-1, 1].
type Epicycloid struct {
	Ratio         float64
	PointDistance float64
}

var _ Rosette = Epicycloid{}

// NewEpicycloid returns an epicycloid rosette.
func NewEpicycloid(ratio, pointDistance float64) (Epicycloid, error) {
	if ratio <= 0 || math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return Epicycloid{}, invalidf("ratio", "must be a positive finite value, got %g", ratio)
	}
	if pointDistance < 0 || math.IsInf(pointDistance, 0) || math.IsNaN(pointDistance) {
		return Epicycloid{}, invalidf("point_distance", "must be non-negative and finite, got %g", pointDistance)
	}
	return Epicycloid{Ratio: ratio, PointDistance: pointDistance}, nil
}

func (e Epicycloid) Eval(phase float64) float64 {
	return (math.Cos(e.Ratio*phase) + e.PointDistance*math.Cos(2.0*e.Ratio*phase)) /
		(1.0 + e.PointDistance)
}

// HuitEight is the figure-eight cam: n sine lobes enveloped by a half-speed
// cosine, so successive lobes interlock into figure eights across a full
// turn. The modulation is sin(n·θ)·cos(θ/2).
type HuitEight struct {
	Lobes int
}

var _ Rosette = HuitEight{}

// NewHuitEight returns a figure-eight rosette with the given lobe count.
func NewHuitEight(lobes int) (HuitEight, error) {
	if lobes < 1 {
		return HuitEight{}, invalidf("lobes", "must be at least 1, got %d", lobes)
	}
	return HuitEight{Lobes: lobes}, nil
}

func (h HuitEight) Eval(phase float64) float64 {
	return math.Sin(phase*float64(h.Lobes)) * math.Cos(phase/2.0)
}

// GrainDeRiz is the rice-grain cam: pointed ovals from a row wave modulated
// by a slower grain wave, |sin(rows·θ)|·sin(θ/grainSize).
type GrainDeRiz struct {
	GrainSize float64
	Rows      int
}

var _ Rosette = GrainDeRiz{}

// NewGrainDeRiz returns a rice-grain rosette.
func NewGrainDeRiz(grainSize float64, rows int) (GrainDeRiz, error) {
	if grainSize <= 0 || math.IsInf(grainSize, 0) || math.IsNaN(grainSize) {
		return GrainDeRiz{}, invalidf("grain_size", "must be a positive finite value, got %g", grainSize)
	}
	if rows < 1 {
		return GrainDeRiz{}, invalidf("rows", "must be at least 1, got %d", rows)
	}
	return GrainDeRiz{GrainSize: grainSize, Rows: rows}, nil
}

func (g GrainDeRiz) Eval(phase float64) float64 {
	return math.Abs(math.Sin(phase*float64(g.Rows))) * math.Sin(phase/g.GrainSize)
}

// Paon is the peacock cam: a plain sine wave. The fanned arches of the paon
// pattern come from sweeping this cam's phase across the passes of a [Run];
// the cam itself stays simple.
type Paon struct {
	Frequency float64
}

var _ Rosette = Paon{}

// NewPaon returns a peacock rosette.
func NewPaon(frequency float64) (Paon, error) {
	if frequency <= 0 || math.IsInf(frequency, 0) || math.IsNaN(frequency) {
		return Paon{}, invalidf("frequency", "must be a positive finite value, got %g", frequency)
	}
	return Paon{Frequency: frequency}, nil
}

func (p Paon) Eval(phase float64) float64 {
	return math.Sin(p.Frequency * phase)
}

// Diamant is the diamond cam: two rectified waves a quarter wave apart, whose
// sum makes sharp diamond intersections. The modulation is
// |sin(n·θ)| + |sin(n·θ + π/4)| − 1 for n divisions.
type Diamant struct {
	Divisions int
}

var _ Rosette = Diamant{}

// NewDiamant returns a diamond rosette with the given division count.
func NewDiamant(divisions int) (Diamant, error) {
	if divisions < 1 {
		return Diamant{}, invalidf("divisions", "must be at least 1, got %d", divisions)
	}
	return Diamant{Divisions: divisions}, nil
}

func (d Diamant) Eval(phase float64) float64 {
	n := phase * float64(d.Divisions)
	return math.Abs(math.Sin(n)) + math.Abs(math.Sin(n+math.Pi/4.0)) - 1.0
}

// Flat is the null cam: no modulation, so the tool cuts a perfect circle of
// the base radius.
type Flat struct{}

var _ Rosette = Flat{}

func (Flat) Eval(phase float64) float64 { return 0 }

// Table is a sampled cam profile with linear interpolation, for rosette
// shapes that have no closed form. Samples are spaced uniformly over one
// rotation and the profile wraps around.
type Table struct {
	samples []float64
}

var _ Rosette = Table{}

// NewTable returns a table rosette from uniformly spaced samples over
// [0, 2π). At least two samples are required and every sample must be a
// finite value in [-1, 1].
func NewTable(samples []float64) (Table, error) {
	if len(samples) < 2 {
		return Table{}, invalidf("samples", "need at least 2 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if math.IsInf(s, 0) || math.IsNaN(s) || s < -1 || s > 1 {
			return Table{}, invalidf("samples", "sample %d out of range [-1, 1]: %g", i, s)
		}
	}
	cp := make([]float64, len(samples))
	copy(cp, samples)
	return Table{samples: cp}, nil
}

// SampleRosette builds a table rosette by sampling fn uniformly over one
// rotation. The sampled values are clamped to [-1, 1].
func SampleRosette(fn func(phase float64) float64, n int) (Table, error) {
	if n < 2 {
		return Table{}, invalidf("samples", "need at least 2 samples, got %d", n)
	}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Max(-1, math.Min(1, fn(2.0*math.Pi*float64(i)/float64(n))))
	}
	return Table{samples: samples}, nil
}

func (t Table) Eval(phase float64) float64 {
	n := len(t.samples)
	pos := math.Mod(phase, 2.0*math.Pi)
	if pos < 0 {
		pos += 2.0 * math.Pi
	}
	f := pos / (2.0 * math.Pi) * float64(n)
	i := int(f) % n
	j := (i + 1) % n
	frac := f - math.Floor(f)
	return t.samples[i]*(1.0-frac) + t.samples[j]*frac
}

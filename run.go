package engrave

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultDutyCycle is the classical draw ratio of guilloché segments: 70%
// drawn, 30% gap.
const DefaultDutyCycle = 0.7

// Run repeats a rose engine configuration across many passes, the way a real
// machine indexes the work between cuts. Two modes:
//
//   - Rotation (RadiusStep == 0): every pass cuts the same ring, rotated by
//     PhaseStep. This weaves the overlapping pattern of classical guilloché.
//   - Concentric rings (RadiusStep != 0): pass i cuts at
//     BaseRadius + (i − (Passes−1)/2)·RadiusStep, optionally with a
//     sinusoidal phase sway across the passes.
//
// Each pass is optionally split into SegmentsPerPass arcs of which only the
// leading DutyCycle fraction is drawn. A DutyCycle of zero draws nothing; a
// positive DutyCycle that keeps fewer than two samples of a segment is
// rejected by [Run.Validate], so a generated run always holds exactly
// Passes × SegmentsPerPass drawn arcs.
//
// Use [NewRun] to get the classical defaults; a Run built literally is used
// as-is.
type Run struct {
	Rose   RoseConfig
	Passes int // ≥ 1

	// SegmentsPerPass splits each rotation into that many arcs; zero keeps
	// each pass as one full circle.
	SegmentsPerPass int
	// DutyCycle is the drawn fraction of each segment, in [0, 1].
	DutyCycle float64

	// PhaseStep is the rotation between passes in radians; zero means
	// 2π/Passes.
	PhaseStep float64

	// RadiusStep switches to concentric-ring mode.
	RadiusStep float64
	// PhaseSway is the amplitude in radians of the sinusoidal phase offset
	// across concentric passes; PhaseSwayCycles is its number of cycles over
	// the full run (zero means 1).
	PhaseSway       float64
	PhaseSwayCycles float64

	// DepthFalloff linearly shallows the groove across the passes: the last
	// pass is cut at (1 − DepthFalloff) times the first pass's depth. Must
	// be in [0, 1).
	DepthFalloff float64
}

// NewRun returns a run over the given rose configuration with the classical
// guilloché defaults: segmented passes at the standard duty cycle.
func NewRun(rose RoseConfig, passes, segmentsPerPass int) Run {
	return Run{
		Rose:            rose,
		Passes:          passes,
		SegmentsPerPass: segmentsPerPass,
		DutyCycle:       DefaultDutyCycle,
	}
}

// Validate checks every field against its documented domain, including the
// ring radii of concentric-ring mode.
func (r Run) Validate() error {
	if err := r.Rose.Validate(); err != nil {
		return err
	}
	if r.Passes < 1 {
		return invalidf("passes", "must be at least 1, got %d", r.Passes)
	}
	if r.SegmentsPerPass < 0 {
		return invalidf("segments_per_pass", "must be non-negative, got %d", r.SegmentsPerPass)
	}
	if math.IsNaN(r.DutyCycle) || r.DutyCycle < 0 || r.DutyCycle > 1 {
		return invalidf("duty_cycle", "must be in [0, 1], got %g", r.DutyCycle)
	}
	if r.SegmentsPerPass > 0 && r.DutyCycle > 0 {
		// The shortest segment must still draw a line.
		shortest := r.Rose.Resolution / r.SegmentsPerPass
		if keep := int(r.DutyCycle * float64(shortest)); keep < 2 {
			return invalidf("duty_cycle",
				"keeps %d of %d samples per segment, need at least 2", keep, shortest)
		}
	}
	if math.IsNaN(r.PhaseStep) || math.IsInf(r.PhaseStep, 0) {
		return invalidf("phase_step", "must be finite, got %g", r.PhaseStep)
	}
	if math.IsNaN(r.RadiusStep) || math.IsInf(r.RadiusStep, 0) {
		return invalidf("radius_step", "must be finite, got %g", r.RadiusStep)
	}
	if math.IsNaN(r.PhaseSway) || math.IsInf(r.PhaseSway, 0) || r.PhaseSway < 0 {
		return invalidf("phase_sway", "must be non-negative and finite, got %g", r.PhaseSway)
	}
	if math.IsNaN(r.PhaseSwayCycles) || math.IsInf(r.PhaseSwayCycles, 0) || r.PhaseSwayCycles < 0 {
		return invalidf("phase_sway_cycles", "must be non-negative and finite, got %g", r.PhaseSwayCycles)
	}
	if math.IsNaN(r.DepthFalloff) || r.DepthFalloff < 0 || r.DepthFalloff >= 1 {
		return invalidf("depth_falloff", "must be in [0, 1), got %g", r.DepthFalloff)
	}
	if r.RadiusStep != 0 {
		// Every ring must keep its modulated radius positive.
		mod := r.Rose.Amplitude + r.Rose.SecondaryAmplitude
		for i := 0; i < r.Passes; i++ {
			base := r.ringRadius(i)
			if base-mod <= 0 {
				return invalidf("radius_step",
					"pass %d ring radius %g does not clear the modulation amplitude %g", i, base, mod)
			}
		}
	}
	return nil
}

func (r Run) ringRadius(pass int) float64 {
	return r.Rose.BaseRadius + (float64(pass)-float64(r.Passes-1)/2.0)*r.RadiusStep
}

// passConfig derives the rose configuration of one pass.
func (r Run) passConfig(pass int) RoseConfig {
	rose := r.Rose
	if r.RadiusStep != 0 {
		rose.BaseRadius = r.ringRadius(pass)
		if r.PhaseSway > 0 {
			cycles := r.PhaseSwayCycles
			if cycles == 0 {
				cycles = 1
			}
			rose.Phase += r.PhaseSway * math.Sin(2.0*math.Pi*cycles*float64(pass)/float64(r.Passes))
		}
	} else {
		step := r.PhaseStep
		if step == 0 {
			step = 2.0 * math.Pi / float64(r.Passes)
		}
		rose.Phase += float64(pass) * step
	}
	if r.DepthFalloff > 0 && r.Passes > 1 {
		base := rose.Depth
		if base == 0 {
			base = 1
		}
		rose.Depth = base * (1.0 - r.DepthFalloff*float64(pass)/float64(r.Passes-1))
	}
	return rose
}

// segment splits one full rotation into the run's drawn arcs. The full
// circle is divided into equal index ranges and the leading DutyCycle
// fraction of each range is kept; Validate guarantees every kept range is at
// least two samples long.
func (r Run) segment(full Path, pass int) []Path {
	if r.SegmentsPerPass == 0 {
		full.Pass = pass
		return []Path{full}
	}
	n := len(full.Pts)
	segs := make([]Path, 0, r.SegmentsPerPass)
	for s := 0; s < r.SegmentsPerPass; s++ {
		start := s * n / r.SegmentsPerPass
		end := (s + 1) * n / r.SegmentsPerPass
		keep := int(r.DutyCycle * float64(end-start))
		pts := make([]Point, keep)
		copy(pts, full.Pts[start:start+keep])
		segs = append(segs, Path{
			Layer:  full.Layer,
			Pass:   pass,
			Depth:  full.Depth,
			Closed: false,
			Pts:    pts,
		})
	}
	return segs
}

// Generate produces the drawn paths of every pass, ordered by pass then
// segment. Passes are generated concurrently; the result is identical to a
// serial generation.
func (r Run) Generate() ([]Path, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.DutyCycle == 0 && r.SegmentsPerPass > 0 {
		return []Path{}, nil
	}

	slots := make([][]Path, r.Passes)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < r.Passes; i++ {
		i := i
		g.Go(func() error {
			paths, err := r.passConfig(i).Generate()
			if err != nil {
				return err
			}
			slots[i] = r.segment(paths[0], i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Path
	for _, slot := range slots {
		out = append(out, slot...)
	}
	if out == nil {
		out = []Path{}
	}
	return out, nil
}

package engrave

import (
	"errors"
	"math"
	"testing"
)

func validRun() Run {
	c := validRose()
	c.Resolution = 100
	// Five passes against twelve lobes, so no two passes line up.
	return NewRun(c, 5, 4)
}

func TestRunPathCount(t *testing.T) {
	r := validRun()
	paths, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 5*4 {
		t.Fatalf("got %d paths, want %d", len(paths), 5*4)
	}
	for i, p := range paths {
		if p.Closed {
			t.Errorf("segment %d should be open", i)
		}
		if want := i / 4; p.Pass != want {
			t.Errorf("segment %d has pass %d, want %d", i, p.Pass, want)
		}
	}
}

func TestRunFullCircles(t *testing.T) {
	r := validRun()
	r.SegmentsPerPass = 0
	paths, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 5 {
		t.Fatalf("got %d paths, want 5", len(paths))
	}
	for i, p := range paths {
		if !p.Closed {
			t.Errorf("pass %d should be a closed circle", i)
		}
		if len(p.Pts) != 100 {
			t.Errorf("pass %d has %d points, want 100", i, len(p.Pts))
		}
	}
}

func TestRunDutyCycle(t *testing.T) {
	r := validRun()
	paths, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	// 100 samples in 4 segments of 25, the leading 70% of each kept.
	for i, p := range paths {
		if len(p.Pts) != 17 {
			t.Errorf("segment %d has %d points, want 17", i, len(p.Pts))
		}
	}
}

func TestRunDenseWeave(t *testing.T) {
	c := validRose()
	c.Resolution = 360
	r := NewRun(c, 60, 36)
	paths, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2160 {
		t.Fatalf("got %d drawn arcs, want 2160", len(paths))
	}
	// 360 samples in 36 segments of 10, the leading 70% kept.
	for i, p := range paths {
		if len(p.Pts) != 7 {
			t.Fatalf("arc %d has %d samples, want 7", i, len(p.Pts))
		}
	}
}

func TestRunShortSegmentsRejected(t *testing.T) {
	// At 5% duty a 25-sample segment would keep a single point; such a run
	// is rejected up front instead of quietly thinning the arc count.
	r := validRun()
	r.DutyCycle = 0.05
	_, err := r.Generate()
	var perr *InvalidParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want InvalidParameterError", err)
	}

	// The shortest duty that still draws keeps every arc.
	r = validRun()
	r.DutyCycle = 0.08
	paths, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 5*4 {
		t.Fatalf("got %d drawn arcs, want %d", len(paths), 5*4)
	}
	for i, p := range paths {
		if len(p.Pts) != 2 {
			t.Errorf("arc %d has %d points, want 2", i, len(p.Pts))
		}
	}
}

func TestRunDutyCycleZero(t *testing.T) {
	r := validRun()
	r.DutyCycle = 0
	paths, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 0 {
		t.Fatalf("got %d paths, want 0", len(paths))
	}
}

func TestRunDutyCycleFull(t *testing.T) {
	r := validRun()
	r.DutyCycle = 1
	paths, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, p := range paths {
		total += len(p.Pts)
	}
	// Duty 1 keeps every sample of every pass.
	if total != 5*100 {
		t.Fatalf("got %d points total, want %d", total, 5*100)
	}
}

func TestRunPhaseStep(t *testing.T) {
	r := validRun()
	diff(t, r.Rose.Phase+2*math.Pi/5, r.passConfig(1).Phase)

	r.PhaseStep = 0.1
	approxEq(t, r.Rose.Phase+0.3, r.passConfig(3).Phase, 1e-12)
}

func TestRunConcentricRings(t *testing.T) {
	r := validRun()
	r.Rose.BaseRadius = 20
	r.Rose.Amplitude = 1
	r.Passes = 5
	r.RadiusStep = 2
	// Rings centered on the base radius: 16, 18, 20, 22, 24.
	for i, want := range []float64{16, 18, 20, 22, 24} {
		diff(t, want, r.passConfig(i).BaseRadius)
	}
	// Without sway the phase stays put.
	diff(t, r.Rose.Phase, r.passConfig(2).Phase)

	r.PhaseSway = 0.5
	r.PhaseSwayCycles = 1
	phase := r.passConfig(1).Phase
	approxEq(t, r.Rose.Phase+0.5*math.Sin(2*math.Pi/5), phase, 1e-12)
}

func TestRunDepthFalloff(t *testing.T) {
	r := validRun()
	r.Passes = 5
	r.DepthFalloff = 0.4
	diff(t, 1.0, r.passConfig(0).Depth)
	approxEq(t, 0.6, r.passConfig(4).Depth, 1e-12)
}

func TestRunDeterminism(t *testing.T) {
	r := validRun()
	r.Passes = 16
	a, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Generate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a, b)
}

func TestRunValidation(t *testing.T) {
	cases := map[string]func(*Run){
		"passes zero":             func(r *Run) { r.Passes = 0 },
		"segments":                func(r *Run) { r.SegmentsPerPass = -1 },
		"duty cycle":              func(r *Run) { r.DutyCycle = 1.1 },
		"duty too short":          func(r *Run) { r.DutyCycle = 0.05 },
		"segments exceed samples": func(r *Run) { r.SegmentsPerPass = 200 },
		"phase step":              func(r *Run) { r.PhaseStep = math.NaN() },
		"phase sway":              func(r *Run) { r.PhaseSway = -1 },
		"depth falloff":           func(r *Run) { r.DepthFalloff = 1 },
		"ring too small":          func(r *Run) { r.Rose.BaseRadius = 5; r.Rose.Amplitude = 1; r.RadiusStep = 2 },
		"invalid rose":            func(r *Run) { r.Rose.BaseRadius = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validRun()
			mutate(&r)
			_, err := r.Generate()
			var perr *InvalidParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("got %v, want InvalidParameterError", err)
			}
		})
	}
}

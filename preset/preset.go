// Package preset ships named engraving styles as plain data: each preset
// expands to a fully specified layer stack for the engrave package. Presets
// can also be loaded from YAML, so a catalog can live next to the tooling
// that uses it.
package preset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rosewerk/engrave"
)

// Spec is one named engraving style.
type Spec struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Radius      float64     `yaml:"radius"`
	Layers      []LayerSpec `yaml:"layers"`
}

// LayerSpec describes one layer. Exactly one of the fields is set.
type LayerSpec struct {
	Spiro *SpiroSpec `yaml:"spiro,omitempty"`
	Rose  *RoseSpec  `yaml:"rose,omitempty"`
	Run   *RunSpec   `yaml:"run,omitempty"`
}

// SpiroSpec mirrors [engrave.SpiroConfig] as plain data.
type SpiroSpec struct {
	Kind          string  `yaml:"kind,omitempty"` // hypotrochoid (default) or epitrochoid
	OuterRadius   float64 `yaml:"outer_radius"`
	RadiusRatio   float64 `yaml:"radius_ratio"`
	PointDistance float64 `yaml:"point_distance"`
	Rotations     int     `yaml:"rotations"`
	Resolution    int     `yaml:"resolution"`
	WaveAmplitude float64 `yaml:"wave_amplitude,omitempty"`
	WaveFrequency float64 `yaml:"wave_frequency,omitempty"`
	DomeHeight    float64 `yaml:"dome_height,omitempty"`
	Depth         float64 `yaml:"depth,omitempty"`
	CenterX       float64 `yaml:"center_x,omitempty"`
	CenterY       float64 `yaml:"center_y,omitempty"`
}

// RosetteSpec names a rosette variant and its parameters. Kind is one of
// multilobe, sinusoidal, elliptical, epicycloid, huit-eight, grain-de-riz,
// paon, diamant, flat or table.
type RosetteSpec struct {
	Kind          string    `yaml:"kind"`
	Lobes         int       `yaml:"lobes,omitempty"`
	Frequency     float64   `yaml:"frequency,omitempty"`
	Phase         float64   `yaml:"phase,omitempty"`
	Eccentricity  float64   `yaml:"eccentricity,omitempty"`
	Ratio         float64   `yaml:"ratio,omitempty"`
	PointDistance float64   `yaml:"point_distance,omitempty"`
	GrainSize     float64   `yaml:"grain_size,omitempty"`
	Rows          int       `yaml:"rows,omitempty"`
	Divisions     int       `yaml:"divisions,omitempty"`
	Samples       []float64 `yaml:"samples,omitempty"`
}

// RoseSpec mirrors [engrave.RoseConfig] as plain data.
type RoseSpec struct {
	BaseRadius     float64      `yaml:"base_radius"`
	Amplitude      float64      `yaml:"amplitude"`
	Resolution     int          `yaml:"resolution"`
	Phase          float64      `yaml:"phase,omitempty"`
	FrequencyScale float64      `yaml:"frequency_scale,omitempty"`
	Rosette        RosetteSpec  `yaml:"rosette"`
	Secondary      *RosetteSpec `yaml:"secondary,omitempty"`
	SecondaryAmp   float64      `yaml:"secondary_amplitude,omitempty"`
	Depth          float64      `yaml:"depth,omitempty"`
}

// RunSpec mirrors [engrave.Run] as plain data.
type RunSpec struct {
	Rose            RoseSpec `yaml:"rose"`
	Passes          int      `yaml:"passes"`
	SegmentsPerPass int      `yaml:"segments_per_pass,omitempty"`
	DutyCycle       float64  `yaml:"duty_cycle,omitempty"` // 0 means the classical 0.7
	PhaseStep       float64  `yaml:"phase_step,omitempty"`
	RadiusStep      float64  `yaml:"radius_step,omitempty"`
	PhaseSway       float64  `yaml:"phase_sway,omitempty"`
	PhaseSwayCycles float64  `yaml:"phase_sway_cycles,omitempty"`
	DepthFalloff    float64  `yaml:"depth_falloff,omitempty"`
}

// Load decodes a single preset from YAML and validates it by building its
// pattern once.
func Load(r io.Reader) (Spec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Spec
	if err := dec.Decode(&s); err != nil {
		return Spec{}, fmt.Errorf("decoding preset: %w", err)
	}
	if _, err := s.Build(); err != nil {
		return Spec{}, fmt.Errorf("preset %q: %w", s.Name, err)
	}
	return s, nil
}

// Build expands the preset into a composed pattern.
func (s Spec) Build() (*engrave.Pattern, error) {
	p, err := engrave.NewPattern(s.Radius)
	if err != nil {
		return nil, err
	}
	for i, ls := range s.Layers {
		layer, err := ls.layer()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		p.AddLayer(layer)
	}
	return p, nil
}

func (ls LayerSpec) layer() (engrave.Layer, error) {
	set := 0
	if ls.Spiro != nil {
		set++
	}
	if ls.Rose != nil {
		set++
	}
	if ls.Run != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("want exactly one of spiro, rose or run, got %d", set)
	}
	switch {
	case ls.Spiro != nil:
		return ls.Spiro.config()
	case ls.Rose != nil:
		return ls.Rose.config()
	default:
		return ls.Run.run()
	}
}

func (s *SpiroSpec) config() (engrave.SpiroConfig, error) {
	var kind engrave.SpiroKind
	switch s.Kind {
	case "", "hypotrochoid":
		kind = engrave.Hypotrochoid
	case "epitrochoid":
		kind = engrave.Epitrochoid
	default:
		return engrave.SpiroConfig{}, fmt.Errorf("unknown spirograph kind %q", s.Kind)
	}
	c := engrave.SpiroConfig{
		OuterRadius:   s.OuterRadius,
		RadiusRatio:   s.RadiusRatio,
		PointDistance: s.PointDistance,
		Rotations:     s.Rotations,
		Resolution:    s.Resolution,
		Kind:          kind,
		Center:        engrave.XY(s.CenterX, s.CenterY),
		WaveAmplitude: s.WaveAmplitude,
		WaveFrequency: s.WaveFrequency,
		DomeHeight:    s.DomeHeight,
		Depth:         s.Depth,
	}
	return c, c.Validate()
}

func (s RosetteSpec) rosette() (engrave.Rosette, error) {
	switch s.Kind {
	case "multilobe":
		return engrave.NewMultiLobe(s.Lobes)
	case "sinusoidal":
		return engrave.NewSinusoidal(s.Frequency, s.Phase)
	case "elliptical":
		return engrave.NewElliptical(s.Eccentricity)
	case "epicycloid":
		return engrave.NewEpicycloid(s.Ratio, s.PointDistance)
	case "huit-eight":
		return engrave.NewHuitEight(s.Lobes)
	case "grain-de-riz":
		return engrave.NewGrainDeRiz(s.GrainSize, s.Rows)
	case "paon":
		return engrave.NewPaon(s.Frequency)
	case "diamant":
		return engrave.NewDiamant(s.Divisions)
	case "flat":
		return engrave.Flat{}, nil
	case "table":
		return engrave.NewTable(s.Samples)
	default:
		return nil, fmt.Errorf("unknown rosette kind %q", s.Kind)
	}
}

func (s *RoseSpec) config() (engrave.RoseConfig, error) {
	ros, err := s.Rosette.rosette()
	if err != nil {
		return engrave.RoseConfig{}, err
	}
	c := engrave.RoseConfig{
		BaseRadius:     s.BaseRadius,
		Amplitude:      s.Amplitude,
		Resolution:     s.Resolution,
		Phase:          s.Phase,
		FrequencyScale: s.FrequencyScale,
		Rosette:        ros,
		Depth:          s.Depth,
	}
	if s.Secondary != nil {
		sec, err := s.Secondary.rosette()
		if err != nil {
			return engrave.RoseConfig{}, err
		}
		c.SecondaryRosette = sec
		c.SecondaryAmplitude = s.SecondaryAmp
	}
	return c, c.Validate()
}

func (s *RunSpec) run() (engrave.Run, error) {
	rose, err := s.Rose.config()
	if err != nil {
		return engrave.Run{}, err
	}
	r := engrave.Run{
		Rose:            rose,
		Passes:          s.Passes,
		SegmentsPerPass: s.SegmentsPerPass,
		DutyCycle:       s.DutyCycle,
		PhaseStep:       s.PhaseStep,
		RadiusStep:      s.RadiusStep,
		PhaseSway:       s.PhaseSway,
		PhaseSwayCycles: s.PhaseSwayCycles,
		DepthFalloff:    s.DepthFalloff,
	}
	if r.DutyCycle == 0 {
		r.DutyCycle = engrave.DefaultDutyCycle
	}
	return r, r.Validate()
}

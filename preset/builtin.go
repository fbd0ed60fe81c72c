package preset

import "slices"

// builtin is the shipped catalog. The names follow the classical guilloché
// vocabulary; every entry expands to a buildable pattern.
var builtin = map[string]Spec{
	"barleycorn": {
		Name:        "barleycorn",
		Description: "Concentric rows of grain-shaped lobes, the classic dial ground.",
		Radius:      30,
		Layers: []LayerSpec{{Run: &RunSpec{
			Rose: RoseSpec{
				BaseRadius: 12,
				Amplitude:  1,
				Resolution: 720,
				Rosette:    RosetteSpec{Kind: "multilobe", Lobes: 16},
			},
			Passes:          20,
			RadiusStep:      0.5,
			PhaseSway:       0.2,
			PhaseSwayCycles: 10,
		}}},
	},
	"draperie": {
		Name:        "draperie",
		Description: "Draped wave rings swaying against each other.",
		Radius:      30,
		Layers: []LayerSpec{{Run: &RunSpec{
			Rose: RoseSpec{
				BaseRadius: 10,
				Amplitude:  2.5,
				Resolution: 720,
				Rosette:    RosetteSpec{Kind: "sinusoidal", Frequency: 8},
			},
			Passes:          16,
			RadiusStep:      0.45,
			PhaseSway:       0.6,
			PhaseSwayCycles: 2,
		}}},
	},
	"diamant": {
		Name:        "diamant",
		Description: "Rotated near-tangent circles meeting in a central diamond.",
		Radius:      28,
		Layers: []LayerSpec{{Run: &RunSpec{
			Rose: RoseSpec{
				BaseRadius: 3,
				Amplitude:  2.2,
				Resolution: 720,
				Rosette:    RosetteSpec{Kind: "sinusoidal", Frequency: 1},
			},
			Passes: 36,
		}}},
	},
	"flinque": {
		Name:        "flinque",
		Description: "Fine segmented ripple ground for enamel work.",
		Radius:      28,
		Layers: []LayerSpec{{Run: &RunSpec{
			Rose: RoseSpec{
				BaseRadius: 14,
				Amplitude:  0.8,
				Resolution: 1440,
				Rosette:    RosetteSpec{Kind: "sinusoidal", Frequency: 24},
			},
			Passes:          12,
			SegmentsPerPass: 24,
		}}},
	},
	"grain-de-riz": {
		Name:        "grain-de-riz",
		Description: "Concentric rows of pinched rice grains.",
		Radius:      30,
		Layers: []LayerSpec{{Run: &RunSpec{
			Rose: RoseSpec{
				BaseRadius: 12,
				Amplitude:  1.2,
				Resolution: 720,
				Rosette:    RosetteSpec{Kind: "grain-de-riz", GrainSize: 0.5, Rows: 24},
			},
			Passes:     18,
			RadiusStep: 0.5,
		}}},
	},
	"paon": {
		Name:        "paon",
		Description: "Peacock arches fanning out from swayed wave rings.",
		Radius:      28,
		Layers: []LayerSpec{{Run: &RunSpec{
			Rose: RoseSpec{
				BaseRadius: 11,
				Amplitude:  2.5,
				Resolution: 720,
				Rosette:    RosetteSpec{Kind: "paon", Frequency: 5},
			},
			Passes:          14,
			RadiusStep:      0.6,
			PhaseSway:       0.8,
			PhaseSwayCycles: 0.5,
		}}},
	},
	"spiro-ring": {
		Name:        "spiro-ring",
		Description: "A single hypotrochoid ring over a plain track.",
		Radius:      30,
		Layers: []LayerSpec{
			{Rose: &RoseSpec{
				BaseRadius: 20,
				Amplitude:  0,
				Resolution: 720,
				Rosette:    RosetteSpec{Kind: "flat"},
			}},
			{Spiro: &SpiroSpec{
				OuterRadius:   28,
				RadiusRatio:   0.25,
				PointDistance: 0.85,
				Rotations:     1,
				Resolution:    1440,
			}},
		},
	},
}

// Get returns a shipped preset by name.
func Get(name string) (Spec, bool) {
	s, ok := builtin[name]
	return s, ok
}

// Names returns the shipped preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

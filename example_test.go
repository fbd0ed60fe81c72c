package engrave_test

import (
	"log"
	"os"

	"github.com/rosewerk/engrave"
)

// Compose a classic watch dial: a woven guilloché barleycorn ground with a
// spirograph ring on top, then export it for every manufacturing process at
// once.
func Example() {
	ros, err := engrave.NewMultiLobe(12)
	if err != nil {
		log.Fatal(err)
	}
	ground := engrave.NewRun(engrave.RoseConfig{
		BaseRadius: 14,
		Amplitude:  1.5,
		Resolution: 720,
		Rosette:    ros,
	}, 18, 36)

	ring := engrave.SpiroConfig{
		OuterRadius:   28,
		RadiusRatio:   0.25,
		PointDistance: 0.8,
		Rotations:     1,
		Resolution:    1440,
	}

	pattern, err := engrave.NewPattern(30)
	if err != nil {
		log.Fatal(err)
	}
	pattern.AddLayer(ground)
	pattern.AddLayer(ring)

	bit, err := engrave.NewVBit(90, 0.15)
	if err != nil {
		log.Fatal(err)
	}
	if err := pattern.ExportAll("dial", bit, engrave.ExportOptions{}); err != nil {
		log.Fatal(err)
	}
}

func ExampleWriteSVG() {
	ros, err := engrave.NewSinusoidal(8, 0)
	if err != nil {
		log.Fatal(err)
	}
	paths, err := engrave.RoseConfig{
		BaseRadius: 20,
		Amplitude:  2,
		Resolution: 1024,
		Rosette:    ros,
	}.Generate()
	if err != nil {
		log.Fatal(err)
	}
	if err := engrave.WriteSVG(os.Stdout, paths, engrave.SVGOptions{MaxPrecision: 3}); err != nil {
		log.Fatal(err)
	}
}

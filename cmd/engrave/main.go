package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rosewerk/engrave"
	"github.com/rosewerk/engrave/preset"
)

func main() {
	presetName := flag.String("preset", "", "Use a shipped preset. See -list for the available names.")
	presetFile := flag.String("preset-file", "", "Load a preset from a YAML file instead of the shipped catalog.")
	list := flag.Bool("list", false, "List the shipped presets and exit.")

	out := flag.String("out", "pattern", "Output basename. The exporters append .svg, .stl, .stp and .png.")
	formats := flag.String("formats", "svg,stl,stp", "Comma-separated output formats: any of svg, stl, stp, png.")

	bitShape := flag.String("bit", "v", "Cutting bit shape: v, flat or round.")
	bitAngle := flag.Float64("bit-angle", 90, "Included angle of the V bit in degrees.")
	bitWidth := flag.Float64("bit-width", 0.2, "Cut width of the V or flat bit in mm.")
	bitDepth := flag.Float64("bit-depth", 0.1, "Cut depth of the flat bit in mm.")
	bitRadius := flag.Float64("bit-radius", 0.1, "Tip radius of the round bit in mm.")

	asciiSTL := flag.Bool("ascii-stl", false, "Write ASCII STL instead of binary.")
	baseThickness := flag.Float64("base-thickness", 2, "Thickness of the base plate in mm.")
	smooth := flag.Bool("smooth", false, "Smooth the SVG output with splines instead of line segments.")
	precision := flag.Int("precision", 4, "Maximum number of decimal places in the SVG output.")
	pngSize := flag.Int("png-size", 1024, "Size in pixels of the PNG preview's longest side.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: engrave -preset NAME [options]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, name := range preset.Names() {
			s, _ := preset.Get(name)
			fmt.Printf("%-12s %s\n", name, s.Description)
		}
		return
	}

	var (
		spec preset.Spec
		err  error
	)
	switch {
	case *presetFile != "":
		f, err := os.Open(*presetFile)
		if err != nil {
			die(err)
		}
		spec, err = preset.Load(f)
		f.Close()
		if err != nil {
			die(err)
		}
	case *presetName != "":
		var ok bool
		spec, ok = preset.Get(*presetName)
		if !ok {
			die(fmt.Errorf("unknown preset %q, try -list", *presetName))
		}
	default:
		flag.Usage()
		os.Exit(1)
	}

	pattern, err := spec.Build()
	if err != nil {
		die(err)
	}

	bit, err := makeBit(*bitShape, *bitAngle, *bitWidth, *bitDepth, *bitRadius)
	if err != nil {
		die(err)
	}

	opts := engrave.ExportOptions{
		SVG:  engrave.SVGOptions{MaxPrecision: *precision, Smooth: *smooth},
		Mesh: engrave.MeshOptions{ASCII: *asciiSTL, BaseThickness: *baseThickness, Name: spec.Name},
		STEP: engrave.STEPOptions{Name: spec.Name},
	}

	want := map[string]bool{}
	for _, f := range strings.Split(*formats, ",") {
		switch f = strings.TrimSpace(f); f {
		case "svg", "stl", "stp", "png":
			want[f] = true
		case "":
		default:
			die(fmt.Errorf("unknown format %q", f))
		}
	}
	if want["png"] {
		opts.PNG = &engrave.RasterOptions{Size: *pngSize}
	}

	if want["svg"] && want["stl"] && want["stp"] {
		if err := pattern.ExportAll(*out, bit, opts); err != nil {
			die(err)
		}
		return
	}

	paths, err := pattern.Generate()
	if err != nil {
		die(err)
	}
	if want["svg"] {
		writeFile(*out+".svg", func(f *os.File) error {
			return engrave.WriteSVG(f, paths, opts.SVG)
		})
	}
	if want["stl"] {
		writeFile(*out+".stl", func(f *os.File) error {
			return engrave.WriteSTL(f, paths, bit, pattern.Radius(), opts.Mesh)
		})
	}
	if want["stp"] {
		writeFile(*out+".stp", func(f *os.File) error {
			return engrave.WriteSTEP(f, paths, bit, pattern.Radius(), opts.STEP)
		})
	}
	if want["png"] {
		writeFile(*out+".png", func(f *os.File) error {
			return engrave.RenderPNG(f, paths, *opts.PNG)
		})
	}
}

func makeBit(shape string, angle, width, depth, radius float64) (engrave.Bit, error) {
	switch shape {
	case "v":
		return engrave.NewVBit(angle, width)
	case "flat":
		return engrave.NewFlatBit(width, depth)
	case "round":
		return engrave.NewRoundBit(radius)
	default:
		return nil, fmt.Errorf("unknown bit shape %q", shape)
	}
}

func writeFile(name string, write func(f *os.File) error) {
	f, err := os.Create(name)
	if err != nil {
		die(err)
	}
	if err := write(f); err != nil {
		f.Close()
		die(err)
	}
	if err := f.Close(); err != nil {
		die(err)
	}
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "engrave: %v\n", err)
	os.Exit(1)
}

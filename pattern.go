package engrave

import (
	"errors"
	"math"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Layer is anything that can generate tool paths: a [SpiroConfig], a
// [RoseConfig], a [Run], or any caller-provided generator. Generate must be
// deterministic and must not retain the returned slices.
type Layer interface {
	Generate() ([]Path, error)
}

// Pattern composes layers into one engraving, in draw order. Radius is the
// overall pattern radius in millimeters and is bound to the watch-face
// domain.
//
// Layers generate concurrently but the composed path order is fixed: by
// layer, then pass, then sample. Generation is cached; adding a layer
// invalidates the cache.
type Pattern struct {
	radius float64

	mu     sync.Mutex
	layers []Layer
	paths  []Path
}

// NewPattern returns an empty pattern with the given overall radius in
// millimeters, in [MinRadius, MaxRadius].
func NewPattern(radius float64) (*Pattern, error) {
	if math.IsNaN(radius) || radius < MinRadius || radius > MaxRadius {
		return nil, invalidf("radius", "must be in [%g, %g] mm, got %g", MinRadius, MaxRadius, radius)
	}
	return &Pattern{radius: radius}, nil
}

// Radius returns the overall pattern radius in millimeters.
func (p *Pattern) Radius() float64 { return p.radius }

// AddLayer appends a layer at the top of the draw order.
func (p *Pattern) AddLayer(l Layer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.layers = append(p.layers, l)
	p.paths = nil
}

// NumLayers returns the number of composed layers.
func (p *Pattern) NumLayers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.layers)
}

// Generate produces the composed paths of all layers. Every path carries its
// layer index. The result is cached; callers must not modify it.
func (p *Pattern) Generate() ([]Path, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paths != nil {
		return p.paths, nil
	}

	slots := make([][]Path, len(p.layers))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, layer := range p.layers {
		i, layer := i, layer
		g.Go(func() error {
			paths, err := layer.Generate()
			if err != nil {
				return err
			}
			for j := range paths {
				paths[j].Layer = i
			}
			slots[i] = paths
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := []Path{}
	for _, slot := range slots {
		paths = append(paths, slot...)
	}
	p.paths = paths
	return paths, nil
}

// ExportOptions bundles the per-format options of [Pattern.ExportAll].
type ExportOptions struct {
	SVG  SVGOptions
	Mesh MeshOptions
	STEP STEPOptions

	// PNG enables the raster preview; nil skips it.
	PNG *RasterOptions
}

// ExportAll writes the pattern to basename.svg, basename.stl and
// basename.stp, plus basename.png when the preview is enabled. A geometry
// error in one format does not block the others; all errors are joined.
func (p *Pattern) ExportAll(basename string, bit Bit, opts ExportOptions) error {
	paths, err := p.Generate()
	if err != nil {
		return err
	}

	var errs []error
	export := func(ext string, write func(f *os.File) error) {
		f, err := os.Create(basename + ext)
		if err != nil {
			errs = append(errs, err)
			return
		}
		if err := write(f); err != nil {
			errs = append(errs, err)
			f.Close()
			return
		}
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	export(".svg", func(f *os.File) error {
		return WriteSVG(f, paths, opts.SVG)
	})
	export(".stl", func(f *os.File) error {
		return WriteSTL(f, paths, bit, p.radius, opts.Mesh)
	})
	export(".stp", func(f *os.File) error {
		return WriteSTEP(f, paths, bit, p.radius, opts.STEP)
	})
	if opts.PNG != nil {
		export(".png", func(f *os.File) error {
			return RenderPNG(f, paths, *opts.PNG)
		})
	}
	return errors.Join(errs...)
}

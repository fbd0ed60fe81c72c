package engrave

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// RasterOptions specifies optional settings for [RenderPNG].
type RasterOptions struct {
	// Size in pixels of the longest image side; zero means 1024.
	Size int

	// StrokeWidth in millimeters; zero means 0.2.
	StrokeWidth float64

	// Margin around the pattern's bounding box in millimeters; zero means 1.
	Margin float64
}

func (opts RasterOptions) size() int {
	if opts.Size == 0 {
		return 1024
	}
	return opts.Size
}

func (opts RasterOptions) strokeWidth() float64 {
	if opts.StrokeWidth == 0 {
		return 0.2
	}
	return opts.StrokeWidth
}

func (opts RasterOptions) margin() float64 {
	if opts.Margin == 0 {
		return 1
	}
	return opts.Margin
}

// RenderPNG rasterizes a quick anti-aliased preview of the paths, white on
// black, and encodes it as PNG.
func RenderPNG(w io.Writer, paths []Path, opts RasterOptions) error {
	if opts.Size < 0 {
		return invalidf("size", "must be non-negative, got %d", opts.Size)
	}

	b := PathBounds(paths)
	if b.IsEmpty() {
		b = Bounds{MaxX: 1, MaxY: 1}
	}
	b = b.Inset(opts.margin())

	scale := float64(opts.size()) / math.Max(b.Width(), b.Height())
	width := int(math.Ceil(b.Width() * scale))
	height := int(math.Ceil(b.Height() * scale))

	// Device coordinates: millimeters scaled to pixels, y flipped so the
	// pattern is upright.
	device := func(pt Point) (float64, float64) {
		return (pt.X - b.MinX) * scale, (b.MaxY - pt.Y) * scale
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	half := opts.strokeWidth() * scale / 2.0
	for _, p := range paths {
		segs := len(p.Pts) - 1
		if p.Closed {
			segs = len(p.Pts)
		}
		for i := 0; i < segs; i++ {
			x0, y0 := device(p.Pts[i])
			x1, y1 := device(p.Pts[(i+1)%len(p.Pts)])
			strokeSegment(r, x0, y0, x1, y1, half)
		}
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{})

	return png.Encode(w, dst)
}

// strokeSegment fills one line segment as a quad of the given half-width.
// The rasterizer only fills, so stroking is done by hand; adjacent segments
// overlap slightly at their joints, which even-odd-free filling renders
// seamlessly.
func strokeSegment(r *vector.Rasterizer, x0, y0, x1, y1, half float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// Perpendicular offset, extended slightly along the segment to cover
	// joints.
	nx, ny := -dy/l*half, dx/l*half
	ex, ey := dx/l*half, dy/l*half
	r.MoveTo(float32(x0-ex+nx), float32(y0-ey+ny))
	r.LineTo(float32(x1+ex+nx), float32(y1+ey+ny))
	r.LineTo(float32(x1+ex-nx), float32(y1+ey-ny))
	r.LineTo(float32(x0-ex-nx), float32(y0-ey-ny))
	r.ClosePath()
}

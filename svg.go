package engrave

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int

	// Margin around the pattern's bounding box in millimeters; zero means 1.
	Margin float64

	// StrokeWidth of the emitted paths in millimeters; zero means 0.1.
	StrokeWidth float64

	// Smooth emits Catmull-Rom cubics through the sample points instead of
	// straight line segments.
	Smooth bool
}

func (opts SVGOptions) margin() float64 {
	if opts.Margin == 0 {
		return 1
	}
	return opts.Margin
}

func (opts SVGOptions) strokeWidth() float64 {
	if opts.StrokeWidth == 0 {
		return 0.1
	}
	return opts.StrokeWidth
}

// WriteSVG writes the paths as a standalone SVG document in millimeter
// coordinates: one group per layer, one path element per tool path, with the
// groove depth scale recorded in a data-depth attribute.
//
// The current implementation doesn't take any special care to produce a
// short document (reducing precision, using relative movement).
func WriteSVG(w io.Writer, paths []Path, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimRight(s, ".")
		}
	}

	b := PathBounds(paths)
	if b.IsEmpty() {
		b = Bounds{}
	}
	b = b.Inset(opts.margin())
	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="%s %s %s %s">`,
		format(b.Width()), format(b.Height()),
		format(b.MinX), format(b.MinY), format(b.Width()), format(b.Height()))
	writef("\n")

	layer := -2
	open := false
	for _, p := range paths {
		if len(p.Pts) == 0 {
			continue
		}
		if p.Layer != layer {
			if open {
				writef("</g>\n")
			}
			layer = p.Layer
			writef(`<g id="layer-%d" fill="none" stroke="black" stroke-width="%s">`, layer, format(opts.strokeWidth()))
			writef("\n")
			open = true
		}
		writef(`<path data-depth="%s" d="`, format(p.Depth))
		if opts.Smooth && len(p.Pts) >= 3 {
			writeSmoothData(writef, format, p)
		} else {
			writeLineData(writef, format, p)
		}
		writef("\"/>\n")
	}
	if open {
		writef("</g>\n")
	}
	writef("</svg>\n")
	return err
}

func writeLineData(writef func(string, ...any), format func(float64) string, p Path) {
	for i, pt := range p.Pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			writef(" ")
		}
		writef("%s%s,%s", cmd, format(pt.X), format(pt.Y))
	}
	if p.Closed {
		writef(" Z")
	}
}

// writeSmoothData emits a Catmull-Rom spline through the sample points as
// cubic Bézier segments. Closed paths wrap around the seam; open paths clamp
// the end tangents.
func writeSmoothData(writef func(string, ...any), format func(float64) string, p Path) {
	n := len(p.Pts)
	at := func(i int) Point {
		if p.Closed {
			return p.Pts[((i%n)+n)%n]
		}
		if i < 0 {
			return p.Pts[0]
		}
		if i >= n {
			return p.Pts[n-1]
		}
		return p.Pts[i]
	}

	segs := n - 1
	if p.Closed {
		segs = n
	}
	writef("M%s,%s", format(p.Pts[0].X), format(p.Pts[0].Y))
	for i := 0; i < segs; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c1 := p1.Translate(p2.Sub(p0).Div(6))
		c2 := p2.Translate(p3.Sub(p1).Div(6).Negate())
		writef(" C%s,%s %s,%s %s,%s",
			format(c1.X), format(c1.Y),
			format(c2.X), format(c2.Y),
			format(p2.X), format(p2.Y))
	}
	if p.Closed {
		writef(" Z")
	}
}

package engrave

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MeshOptions specifies optional settings for [WriteSTL] and [BuildMesh].
type MeshOptions struct {
	// ASCII emits the text STL format instead of the binary one.
	ASCII bool

	// Name of the solid, used in the ASCII format and the binary header;
	// empty means "engrave".
	Name string

	// BaseThickness of the base plate in millimeters; zero means 2.
	BaseThickness float64

	// BaseSegments around the base plate circumference; zero means 128.
	BaseSegments int

	// CollapseTolerance bounds how far a swept groove wall may fold back
	// against the path direction before the sweep is rejected as
	// degenerate; zero means 1e-9.
	CollapseTolerance float64
}

func (opts MeshOptions) name() string {
	if opts.Name == "" {
		return "engrave"
	}
	return opts.Name
}

func (opts MeshOptions) baseThickness() float64 {
	if opts.BaseThickness == 0 {
		return 2
	}
	return opts.BaseThickness
}

func (opts MeshOptions) baseSegments() int {
	if opts.BaseSegments == 0 {
		return 128
	}
	return opts.BaseSegments
}

func (opts MeshOptions) collapseTolerance() float64 {
	if opts.CollapseTolerance == 0 {
		return 1e-9
	}
	return opts.CollapseTolerance
}

// Triangle is one mesh facet.
type Triangle struct {
	A, B, C Point
}

// Normal returns the right-handed unit normal of the facet, or the zero
// vector for a facet with no area.
func (t Triangle) Normal() Vec3 {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	h := n.Hypot()
	if h == 0 {
		return Vec3{}
	}
	return n.Div(h)
}

// profilePoint is one vertex of a bit cross-section, as a lateral offset
// from the path and a drop below the stock surface.
type profilePoint struct {
	off  float64
	drop float64
}

// bitProfile returns the closed cross-section polygon of a bit, from the
// left rail at the surface, down around the cutting edge, to the right rail
// at the surface. The loop is closed by the implicit top edge from the last
// vertex back to the first.
func bitProfile(bit Bit) []profilePoint {
	hw := bit.HalfWidth()
	switch b := bit.(type) {
	case VBit:
		return []profilePoint{{hw, 0}, {0, b.Depth()}, {-hw, 0}}
	case FlatBit:
		return []profilePoint{{hw, 0}, {hw, b.Depth()}, {-hw, b.Depth()}, {-hw, 0}}
	default:
		// Sampled cross-section, for round bits and caller-provided bits.
		const arcs = 8
		pts := make([]profilePoint, arcs+1)
		for j := range pts {
			off := hw - 2.0*hw*float64(j)/float64(arcs)
			pts[j] = profilePoint{off, bit.CrossSection(off)}
		}
		return pts
	}
}

// BuildMesh sweeps the bit cross-section along every path and returns the
// triangles of the resulting groove solids, plus a base plate disc of the
// given radius when plateRadius is non-zero. Every groove solid and the
// plate are closed 2-manifolds.
//
// A non-zero plateRadius must be in [MinRadius, MaxRadius]. Paths that
// cannot be swept, such as a path shorter than two points or a sweep folding
// back on itself, are rejected with a [DegenerateGeometryError].
func BuildMesh(paths []Path, bit Bit, plateRadius float64, opts MeshOptions) ([]Triangle, error) {
	if bit == nil {
		return nil, invalidf("bit", "must not be nil")
	}
	if plateRadius != 0 {
		if math.IsNaN(plateRadius) || plateRadius < MinRadius || plateRadius > MaxRadius {
			return nil, invalidf("plate_radius", "must be in [%g, %g] mm, got %g", MinRadius, MaxRadius, plateRadius)
		}
	}

	var tris []Triangle
	profile := bitProfile(bit)
	for _, p := range paths {
		var err error
		tris, err = sweepGroove(tris, p, profile, opts.collapseTolerance())
		if err != nil {
			return nil, err
		}
	}
	if plateRadius != 0 {
		tris = appendPlate(tris, plateRadius, opts.baseThickness(), opts.baseSegments())
	}
	return tris, nil
}

// sweepGroove appends the closed prism tube of one groove to tris. Ring i is
// the bit cross-section placed at sample i, oriented by the planar path
// tangent; consecutive rings are stitched with quads, and open paths get end
// caps.
func sweepGroove(tris []Triangle, p Path, profile []profilePoint, collapseTol float64) ([]Triangle, error) {
	n := len(p.Pts)
	if n < 2 {
		return nil, degeneratef(p.Layer, p.Pass, -1, "path has %d points, cannot sweep", n)
	}
	depth := p.Depth
	if depth == 0 {
		depth = 1
	}

	tangent := func(i int) (Vec3, error) {
		var prev, next Point
		if p.Closed {
			prev = p.Pts[(i-1+n)%n]
			next = p.Pts[(i+1)%n]
		} else {
			prev = p.Pts[max(i-1, 0)]
			next = p.Pts[min(i+1, n-1)]
		}
		t := next.Sub(prev)
		t.Z = 0
		h := t.Hypot()
		if h == 0 {
			return Vec3{}, degeneratef(p.Layer, p.Pass, i, "zero-length segment")
		}
		return t.Div(h), nil
	}

	collapsed := func(prev, cur []Point, step Vec3, sample int) error {
		for j := range cur {
			if cur[j].Sub(prev[j]).Dot(step) < -collapseTol {
				return degeneratef(p.Layer, p.Pass, sample,
					"groove wall folds back on itself; bit half-width exceeds the local curvature radius")
			}
		}
		return nil
	}

	rings := make([][]Point, n)
	for i := range rings {
		t, err := tangent(i)
		if err != nil {
			return nil, err
		}
		// Left-hand planar normal of the tangent.
		norm := Vec(-t.Y, t.X, 0)
		ring := make([]Point, len(profile))
		for j, pp := range profile {
			ring[j] = p.Pts[i].Translate(norm.Mul(pp.off)).Translate(Vec(0, 0, -pp.drop*depth))
		}
		rings[i] = ring

		if i > 0 {
			if err := collapsed(rings[i-1], ring, p.Pts[i].Sub(p.Pts[i-1]), i); err != nil {
				return nil, err
			}
		}
	}
	if p.Closed {
		// The wrap-around segment folds like any other.
		if err := collapsed(rings[n-1], rings[0], p.Pts[0].Sub(p.Pts[n-1]), 0); err != nil {
			return nil, err
		}
	}

	segs := n - 1
	if p.Closed {
		segs = n
	}
	m := len(profile)
	for i := 0; i < segs; i++ {
		a := rings[i]
		b := rings[(i+1)%n]
		for j := 0; j < m; j++ {
			k := (j + 1) % m
			tris = append(tris,
				Triangle{a[j], b[j], b[k]},
				Triangle{a[j], b[k], a[k]},
			)
		}
	}
	if !p.Closed {
		// End caps: fan over the cross-section polygon, wound to face
		// outward at each end.
		first, last := rings[0], rings[n-1]
		for j := 1; j < m-1; j++ {
			tris = append(tris,
				Triangle{first[0], first[j+1], first[j]},
				Triangle{last[0], last[j], last[j+1]},
			)
		}
	}
	return tris, nil
}

// appendPlate appends a closed disc solid spanning z in [-thickness, 0],
// centered on the origin.
func appendPlate(tris []Triangle, radius, thickness float64, segments int) []Triangle {
	top := make([]Point, segments)
	bottom := make([]Point, segments)
	for i := range top {
		sin, cos := math.Sincos(2.0 * math.Pi * float64(i) / float64(segments))
		top[i] = Pt(radius*cos, radius*sin, 0)
		bottom[i] = Pt(radius*cos, radius*sin, -thickness)
	}
	ctop := Pt(0, 0, 0)
	cbottom := Pt(0, 0, -thickness)
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		tris = append(tris,
			Triangle{ctop, top[i], top[j]},
			Triangle{cbottom, bottom[j], bottom[i]},
			Triangle{top[i], bottom[i], bottom[j]},
			Triangle{top[i], bottom[j], top[j]},
		)
	}
	return tris
}

// WriteSTL sweeps the bit along every path and writes the resulting mesh,
// binary by default or ASCII per the options. plateRadius adds a base plate
// disc; zero omits it.
func WriteSTL(w io.Writer, paths []Path, bit Bit, plateRadius float64, opts MeshOptions) error {
	tris, err := BuildMesh(paths, bit, plateRadius, opts)
	if err != nil {
		return err
	}
	if opts.ASCII {
		return writeASCIISTL(w, tris, opts.name())
	}
	return writeBinarySTL(w, tris, opts.name())
}

func writeBinarySTL(w io.Writer, tris []Triangle, name string) error {
	bw := bufio.NewWriter(w)
	var header [80]byte
	copy(header[:], name)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(tris))); err != nil {
		return err
	}
	var buf [50]byte
	put := func(off int, v float64) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(v)))
	}
	for _, t := range tris {
		n := t.Normal()
		put(0, n.X)
		put(4, n.Y)
		put(8, n.Z)
		for i, pt := range [...]Point{t.A, t.B, t.C} {
			put(12+12*i, pt.X)
			put(16+12*i, pt.Y)
			put(20+12*i, pt.Z)
		}
		// Attribute byte count stays zero.
		buf[48], buf[49] = 0, 0
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeASCIISTL(w io.Writer, tris []Triangle, name string) error {
	bw := bufio.NewWriter(w)
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(bw, s, v...)
	}
	writef("solid %s\n", name)
	for _, t := range tris {
		n := t.Normal()
		writef("  facet normal %e %e %e\n", n.X, n.Y, n.Z)
		writef("    outer loop\n")
		for _, pt := range [...]Point{t.A, t.B, t.C} {
			writef("      vertex %e %e %e\n", pt.X, pt.Y, pt.Z)
		}
		writef("    endloop\n")
		writef("  endfacet\n")
	}
	writef("endsolid %s\n", name)
	if err != nil {
		return err
	}
	return bw.Flush()
}

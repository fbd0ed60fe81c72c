package engrave

import "math"

// Path is one continuous tool path: an ordered polyline of sample points at
// a constant groove depth. Layer and Pass record where the path came from in
// a composed pattern; both are -1 on paths generated outside a composition.
//
// A closed path connects its last point back to its first; the seam point is
// not repeated.
type Path struct {
	Layer  int
	Pass   int
	Depth  float64
	Closed bool
	Pts    []Point
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	pts := make([]Point, len(p.Pts))
	copy(pts, p.Pts)
	p.Pts = pts
	return p
}

// Translate returns a copy of the path with every point offset by v.
func (p Path) Translate(v Vec3) Path {
	pts := make([]Point, len(p.Pts))
	for i, pt := range p.Pts {
		pts[i] = pt.Translate(v)
	}
	p.Pts = pts
	return p
}

// Length returns the total arc length of the polyline, including the closing
// segment for closed paths.
func (p Path) Length() float64 {
	if len(p.Pts) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(p.Pts); i++ {
		sum += p.Pts[i].Distance(p.Pts[i-1])
	}
	if p.Closed {
		sum += p.Pts[0].Distance(p.Pts[len(p.Pts)-1])
	}
	return sum
}

// Bounds is an axis-aligned planar bounding box in millimeters.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBounds returns an inverted box that unions cleanly with any point.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether no point has been added to the box.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Add extends the box to cover pt, ignoring the z coordinate.
func (b Bounds) Add(pt Point) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, pt.X),
		MinY: math.Min(b.MinY, pt.Y),
		MaxX: math.Max(b.MaxX, pt.X),
		MaxY: math.Max(b.MaxY, pt.Y),
	}
}

// Union returns the smallest box covering both boxes.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Inset returns the box grown by d on every side (shrunk for negative d).
func (b Bounds) Inset(d float64) Bounds {
	return Bounds{
		MinX: b.MinX - d,
		MinY: b.MinY - d,
		MaxX: b.MaxX + d,
		MaxY: b.MaxY + d,
	}
}

// PathBounds returns the planar bounding box of a set of paths.
func PathBounds(paths []Path) Bounds {
	b := EmptyBounds()
	for _, p := range paths {
		for _, pt := range p.Pts {
			b = b.Add(pt)
		}
	}
	return b
}

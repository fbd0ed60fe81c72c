package engrave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
)

// edgeCount quantizes nothing: tube rings are shared between neighboring
// facets by construction, so endpoints of coincident edges are bit-equal.
func edgeCount(tris []Triangle) map[[2]Point]int {
	edges := map[[2]Point]int{}
	add := func(a, b Point) {
		if b.X < a.X || (b.X == a.X && (b.Y < a.Y || (b.Y == a.Y && b.Z < a.Z))) {
			a, b = b, a
		}
		edges[[2]Point{a, b}]++
	}
	for _, t := range tris {
		add(t.A, t.B)
		add(t.B, t.C)
		add(t.C, t.A)
	}
	return edges
}

func TestMeshManifold(t *testing.T) {
	bit, err := NewVBit(90, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	p := validPattern(t)
	paths, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}
	tris, err := BuildMesh(paths, bit, p.Radius(), MeshOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) == 0 {
		t.Fatal("empty mesh")
	}
	for edge, n := range edgeCount(tris) {
		if n != 2 {
			t.Fatalf("edge %v-%v appears %d times, want 2", edge[0], edge[1], n)
		}
	}
	for i, tri := range tris {
		if (tri.Normal() == Vec3{}) {
			t.Fatalf("facet %d has no area", i)
		}
	}
}

func TestMeshTriangleCount(t *testing.T) {
	bit, err := NewVBit(60, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	open := Path{Depth: 1, Pts: []Point{
		XY(0, 0), XY(1, 0), XY(2, 0.1), XY(3, 0.3), XY(4, 0.6),
		XY(5, 1), XY(6, 1.5), XY(7, 2.1), XY(8, 2.8), XY(9, 3.6),
	}}
	tris, err := BuildMesh([]Path{open}, bit, 0, MeshOptions{})
	if err != nil {
		t.Fatal(err)
	}
	// 9 quads of 3 profile edges each, plus one cap triangle per end.
	diff(t, 9*3*2+2, len(tris))

	c := validRose()
	c.Resolution = 64
	paths, err := c.Generate()
	if err != nil {
		t.Fatal(err)
	}
	tris, err = BuildMesh(paths, bit, 0, MeshOptions{})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 64*3*2, len(tris))

	tris, err = BuildMesh(nil, bit, 30, MeshOptions{BaseSegments: 16})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 16*4, len(tris))
}

func TestMeshGrooveBelowSurface(t *testing.T) {
	bit, err := NewVBit(90, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	paths, err := validRose().Generate()
	if err != nil {
		t.Fatal(err)
	}
	tris, err := BuildMesh(paths, bit, 0, MeshOptions{})
	if err != nil {
		t.Fatal(err)
	}
	lo := 0.0
	for _, tri := range tris {
		for _, pt := range [...]Point{tri.A, tri.B, tri.C} {
			if pt.Z > 1e-12 {
				t.Fatalf("groove vertex above the surface: %v", pt)
			}
			if pt.Z < lo {
				lo = pt.Z
			}
		}
	}
	approxEq(t, -bit.Depth(), lo, 1e-9)
}

func TestMeshDepthScale(t *testing.T) {
	bit, err := NewVBit(90, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	c := validRose()
	c.Depth = 0.5
	paths, err := c.Generate()
	if err != nil {
		t.Fatal(err)
	}
	tris, err := BuildMesh(paths, bit, 0, MeshOptions{})
	if err != nil {
		t.Fatal(err)
	}
	lo := 0.0
	for _, tri := range tris {
		for _, pt := range [...]Point{tri.A, tri.B, tri.C} {
			if pt.Z < lo {
				lo = pt.Z
			}
		}
	}
	approxEq(t, -bit.Depth()*0.5, lo, 1e-9)
}

func TestMeshCollapse(t *testing.T) {
	// A bit wider than the circle's radius folds the inner groove wall.
	bit, err := NewVBit(30, 1.2)
	if err != nil {
		t.Fatal(err)
	}
	circle := Path{Layer: 2, Pass: 3, Depth: 1, Closed: true, Pts: circlePts(0.3, 64)}
	_, err = BuildMesh([]Path{circle}, bit, 0, MeshOptions{})
	var gerr *DegenerateGeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("got %v, want DegenerateGeometryError", err)
	}
	diff(t, 2, gerr.Layer)
	diff(t, 3, gerr.Pass)
	if gerr.Sample < 0 {
		t.Errorf("sample index not recorded: %d", gerr.Sample)
	}
}

func TestMeshCollapseAtSeam(t *testing.T) {
	// A closed wedge: two nearly parallel rails joined by a gentle turn on
	// the right and a 0.2 mm hairpin at the seam. The turn radius of 0.5
	// clears the bit half-width of 0.3; the seam does not.
	var pts []Point
	for x := 0.0; x <= 5; x += 0.5 {
		pts = append(pts, XY(x, 0))
	}
	for j := 1; j < 8; j++ {
		a := -math.Pi/2 + math.Pi*float64(j)/8
		pts = append(pts, XY(5+0.5*math.Cos(a), 0.5+0.5*math.Sin(a)))
	}
	for x := 5.0; x >= 0; x -= 0.5 {
		pts = append(pts, XY(x, 0.2+0.16*x))
	}

	bit, err := NewVBit(30, 0.6)
	if err != nil {
		t.Fatal(err)
	}
	seam := Path{Layer: 1, Pass: 2, Depth: 1, Closed: true, Pts: pts}
	_, err = BuildMesh([]Path{seam}, bit, 0, MeshOptions{})
	var gerr *DegenerateGeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("got %v, want DegenerateGeometryError", err)
	}
	diff(t, 1, gerr.Layer)
	diff(t, 2, gerr.Pass)
	diff(t, 0, gerr.Sample)

	// Open, the same polyline sweeps fine: no seam segment exists.
	open := seam
	open.Closed = false
	if _, err := BuildMesh([]Path{open}, bit, 0, MeshOptions{}); err != nil {
		t.Fatalf("open sweep failed: %v", err)
	}
}

func TestMeshDegeneratePaths(t *testing.T) {
	bit, err := NewVBit(60, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]Path{
		"single point": {Depth: 1, Pts: []Point{XY(1, 1)}},
		"zero length":  {Depth: 1, Pts: []Point{XY(1, 1), XY(1, 1), XY(2, 1)}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BuildMesh([]Path{p}, bit, 0, MeshOptions{})
			var gerr *DegenerateGeometryError
			if !errors.As(err, &gerr) {
				t.Fatalf("got %v, want DegenerateGeometryError", err)
			}
		})
	}
}

func TestWriteSTLPlateRadiusDomain(t *testing.T) {
	bit, err := NewVBit(60, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	err = WriteSTL(buf, nil, bit, 50, MeshOptions{})
	var perr *InvalidParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want InvalidParameterError", err)
	}
}

func TestBinarySTLFormat(t *testing.T) {
	bit, err := NewVBit(60, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := WriteSTL(buf, nil, bit, 30, MeshOptions{BaseSegments: 16}); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) < 84 {
		t.Fatal("truncated STL")
	}
	count := binary.LittleEndian.Uint32(b[80:])
	diff(t, uint32(16*4), count)
	diff(t, 84+int(count)*50, len(b))
}

func TestSTLDeterminism(t *testing.T) {
	bit, err := NewVBit(90, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	p := validPattern(t)
	paths, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	if err := WriteSTL(a, paths, bit, p.Radius(), MeshOptions{}); err != nil {
		t.Fatal(err)
	}
	if err := WriteSTL(b, paths, bit, p.Radius(), MeshOptions{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("binary STL export is not deterministic")
	}
}

func TestASCIISTL(t *testing.T) {
	bit, err := NewVBit(60, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := WriteSTL(buf, nil, bit, 30, MeshOptions{ASCII: true, BaseSegments: 8, Name: "dial"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "solid dial\n") {
		t.Error("missing solid header")
	}
	if !strings.HasSuffix(out, "endsolid dial\n") {
		t.Error("missing endsolid footer")
	}
	diff(t, 8*4, strings.Count(out, "facet normal"))
	diff(t, 8*4*3, strings.Count(out, "vertex"))
}

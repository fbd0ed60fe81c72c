package engrave

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// STEPOptions specifies optional settings for [WriteSTEP].
type STEPOptions struct {
	// Name of the product recorded in the file header; empty means
	// "engrave".
	Name string

	// Timestamp recorded in the file header. Empty means a fixed epoch so
	// that identical geometry exports byte-identically; set it to override.
	Timestamp string
}

func (opts STEPOptions) name() string {
	if opts.Name == "" {
		return "engrave"
	}
	return opts.Name
}

func (opts STEPOptions) timestamp() string {
	if opts.Timestamp == "" {
		return "2024-01-01T00:00:00"
	}
	return opts.Timestamp
}

// stepIDs hands out the entity identifiers of one STEP document. Every
// allocation is strictly increasing; the allocator is threaded through the
// writer so concurrent exports never share id state.
type stepIDs struct {
	next int
}

func (ids *stepIDs) alloc() int {
	ids.next++
	return ids.next
}

// stepReal formats a float the way STEP wants it: shortest representation
// that still carries a decimal point.
func stepReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += "."
	}
	return s
}

// WriteSTEP writes the paths as an ISO-10303-21 document: one POLYLINE over
// CARTESIAN_POINT entities per path, collected into a GEOMETRIC_CURVE_SET,
// plus a CIRCLE for the stock outline when plateRadius is non-zero. Each path
// additionally carries a swept groove body: a SWEPT_DISK_SOLID of the bit's
// half-width whose directrix runs along the groove floor, the path dropped by
// the bit depth scaled by the path's depth hint.
//
// Entity identifiers are strictly increasing and every reference resolves
// within the document. With the default options the output depends only on
// the input geometry.
func WriteSTEP(w io.Writer, paths []Path, bit Bit, plateRadius float64, opts STEPOptions) error {
	if bit == nil {
		return invalidf("bit", "must not be nil")
	}
	if plateRadius != 0 {
		if math.IsNaN(plateRadius) || plateRadius < MinRadius || plateRadius > MaxRadius {
			return invalidf("plate_radius", "must be in [%g, %g] mm, got %g", MinRadius, MaxRadius, plateRadius)
		}
	}

	bw := bufio.NewWriter(w)
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(bw, s, v...)
	}

	writef("ISO-10303-21;\n")
	writef("HEADER;\n")
	writef("FILE_DESCRIPTION(('engraved pattern tool paths'),'2;1');\n")
	writef("FILE_NAME('%s','%s',(''),(''),'engrave','','');\n", opts.name(), opts.timestamp())
	writef("FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));\n")
	writef("ENDSEC;\n")
	writef("DATA;\n")

	ids := &stepIDs{}
	entity := func(format string, v ...any) int {
		id := ids.alloc()
		writef("#%d=%s;\n", id, fmt.Sprintf(format, v...))
		return id
	}

	origin := entity("CARTESIAN_POINT('',(0.,0.,0.))")
	axisZ := entity("DIRECTION('',(0.,0.,1.))")
	axisX := entity("DIRECTION('',(1.,0.,0.))")
	placement := entity("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", origin, axisZ, axisX)

	unit := entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	angle := entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	solidAngle := entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	uncertainty := entity("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.E-6),#%d,'distance_accuracy_value','')", unit)
	ctx := entity("(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#%d))GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d))REPRESENTATION_CONTEXT('',''))",
		uncertainty, unit, angle, solidAngle)

	polyline := func(name string, pts []Point, closed bool, drop float64) int {
		ptIDs := make([]int, 0, len(pts)+1)
		for _, pt := range pts {
			ptIDs = append(ptIDs, entity("CARTESIAN_POINT('',(%s,%s,%s))",
				stepReal(pt.X), stepReal(pt.Y), stepReal(pt.Z-drop)))
		}
		if closed {
			// A STEP polyline is open; closed paths repeat the seam point.
			ptIDs = append(ptIDs, ptIDs[0])
		}
		refs := make([]string, len(ptIDs))
		for i, id := range ptIDs {
			refs[i] = fmt.Sprintf("#%d", id)
		}
		return entity("POLYLINE('%s',(%s))", name, strings.Join(refs, ","))
	}

	hw := bit.HalfWidth()
	var curves, grooves []int
	for _, p := range paths {
		if len(p.Pts) < 2 {
			continue
		}
		curves = append(curves,
			polyline(fmt.Sprintf("layer %d pass %d", p.Layer, p.Pass), p.Pts, p.Closed, 0))

		depth := bit.Depth()
		if p.Depth != 0 {
			depth *= p.Depth
		}
		axis := polyline(fmt.Sprintf("layer %d pass %d groove axis", p.Layer, p.Pass),
			p.Pts, p.Closed, depth)
		end := len(p.Pts)
		if !p.Closed {
			end--
		}
		grooves = append(grooves, entity("SWEPT_DISK_SOLID('layer %d pass %d groove',#%d,%s,$,0.,%s)",
			p.Layer, p.Pass, axis, stepReal(hw), stepReal(float64(end))))
	}

	if plateRadius != 0 {
		curves = append(curves, entity("CIRCLE('stock outline',#%d,%s)", placement, stepReal(plateRadius)))
	}

	refs := make([]string, len(curves))
	for i, id := range curves {
		refs[i] = fmt.Sprintf("#%d", id)
	}
	set := entity("GEOMETRIC_CURVE_SET('%s',(%s))", opts.name(), strings.Join(refs, ","))
	entity("GEOMETRICALLY_BOUNDED_WIREFRAME_SHAPE_REPRESENTATION('%s',(#%d,#%d),#%d)",
		opts.name(), set, placement, ctx)

	if len(grooves) > 0 {
		refs = make([]string, len(grooves))
		for i, id := range grooves {
			refs[i] = fmt.Sprintf("#%d", id)
		}
		entity("SHAPE_REPRESENTATION('%s grooves',(%s,#%d),#%d)",
			opts.name(), strings.Join(refs, ","), placement, ctx)
	}

	writef("ENDSEC;\n")
	writef("END-ISO-10303-21;\n")
	if err != nil {
		return err
	}
	return bw.Flush()
}

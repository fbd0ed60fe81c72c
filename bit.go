package engrave

import "math"

// Bit is the cross-section of a cutting tool. Exports that build solid
// geometry sweep the cross-section along each tool path; vector exports
// ignore the bit entirely.
//
// CrossSection reports the cutting depth at a lateral offset from the tool
// center line. The offset is in [-HalfWidth, HalfWidth]; outside that range
// the depth is 0.
type Bit interface {
	CrossSection(offset float64) float64
	// HalfWidth returns half the width of the cut at the stock surface.
	HalfWidth() float64
	// Depth returns the maximum cutting depth, at offset 0.
	Depth() float64
}

// VBit is a V-shaped engraving bit with the given included angle. The groove
// is a sharp V: widest at the surface, tapering linearly to a point.
type VBit struct {
	angle float64 // included angle, radians
	width float64
	depth float64
}

var _ Bit = VBit{}

// NewVBit returns a V bit with an included angle in degrees, exclusive of 0
// and 180, cutting a groove of the given surface width in millimeters.
func NewVBit(angleDeg, width float64) (VBit, error) {
	if angleDeg <= 0 || angleDeg >= 180 || math.IsNaN(angleDeg) {
		return VBit{}, invalidf("angle", "must be in (0, 180) degrees, got %g", angleDeg)
	}
	if width <= 0 || math.IsInf(width, 0) || math.IsNaN(width) {
		return VBit{}, invalidf("width", "must be a positive finite value, got %g", width)
	}
	rad := angleDeg * math.Pi / 180.0
	return VBit{
		angle: rad,
		width: width,
		depth: width / 2.0 / math.Tan(rad/2.0),
	}, nil
}

func (b VBit) CrossSection(offset float64) float64 {
	o := math.Abs(offset)
	if o >= b.width/2.0 {
		return 0
	}
	return b.depth * (1.0 - o/(b.width/2.0))
}

func (b VBit) HalfWidth() float64 { return b.width / 2.0 }
func (b VBit) Depth() float64     { return b.depth }

// AngleDegrees returns the included angle of the V in degrees.
func (b VBit) AngleDegrees() float64 { return b.angle * 180.0 / math.Pi }

// FlatBit is a flat end mill: a rectangular groove cross-section with
// vertical walls.
type FlatBit struct {
	width float64
	depth float64
}

var _ Bit = FlatBit{}

// NewFlatBit returns a flat bit cutting a groove of the given width and
// depth, both in millimeters.
func NewFlatBit(width, depth float64) (FlatBit, error) {
	if width <= 0 || math.IsInf(width, 0) || math.IsNaN(width) {
		return FlatBit{}, invalidf("width", "must be a positive finite value, got %g", width)
	}
	if depth <= 0 || math.IsInf(depth, 0) || math.IsNaN(depth) {
		return FlatBit{}, invalidf("depth", "must be a positive finite value, got %g", depth)
	}
	return FlatBit{width: width, depth: depth}, nil
}

func (b FlatBit) CrossSection(offset float64) float64 {
	if math.Abs(offset) >= b.width/2.0 {
		return 0
	}
	return b.depth
}

func (b FlatBit) HalfWidth() float64 { return b.width / 2.0 }
func (b FlatBit) Depth() float64     { return b.depth }

// RoundBit is a ball-nose bit: a semicircular groove cross-section of the
// given radius, cut to its full depth.
type RoundBit struct {
	radius float64
}

var _ Bit = RoundBit{}

// NewRoundBit returns a ball-nose bit with the given tip radius in
// millimeters.
func NewRoundBit(radius float64) (RoundBit, error) {
	if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return RoundBit{}, invalidf("radius", "must be a positive finite value, got %g", radius)
	}
	return RoundBit{radius: radius}, nil
}

func (b RoundBit) CrossSection(offset float64) float64 {
	o := math.Abs(offset)
	if o >= b.radius {
		return 0
	}
	return math.Sqrt(b.radius*b.radius - o*o)
}

func (b RoundBit) HalfWidth() float64 { return b.radius }
func (b RoundBit) Depth() float64     { return b.radius }

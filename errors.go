package engrave

import "fmt"

// InvalidParameterError reports a configuration value that is outside its
// documented domain. It is returned at construction/validation time, before
// any geometry is generated; out-of-range values are never silently clamped.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

func invalidf(param, format string, args ...any) error {
	return &InvalidParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// DegenerateGeometryError reports geometry that cannot be manufactured, such
// as a groove sweep that self-intersects or a zero-length path. Layer, Pass
// and Sample identify where the defect was found; indexes that do not apply
// are −1.
type DegenerateGeometryError struct {
	Layer  int
	Pass   int
	Sample int
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	s := "degenerate geometry"
	if e.Layer >= 0 {
		s += fmt.Sprintf(" in layer %d", e.Layer)
	}
	if e.Pass >= 0 {
		s += fmt.Sprintf(", pass %d", e.Pass)
	}
	if e.Sample >= 0 {
		s += fmt.Sprintf(", sample %d", e.Sample)
	}
	return s + ": " + e.Reason
}

func degeneratef(layer, pass, sample int, format string, args ...any) error {
	return &DegenerateGeometryError{
		Layer:  layer,
		Pass:   pass,
		Sample: sample,
		Reason: fmt.Sprintf(format, args...),
	}
}

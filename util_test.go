package engrave

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEq(t *testing.T, want, got, tol float64) {
	t.Helper()
	d := want - got
	if d < -tol || d > tol {
		t.Errorf("got %g, want %g (±%g)", got, want, tol)
	}
}

func circlePts(radius float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = XY(radius*cos, radius*sin)
	}
	return pts
}

package geom_test

import (
	"math"
	"testing"

	"github.com/chazu/geomkit/pkg/geom"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func approxTol(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func assertMatrix2d(t *testing.T, got geom.Matrix2d, want [2][2]float64) {
	t.Helper()
	if !got.IsEqual(geom.Matrix2dFromArray(want), 1e-6) {
		t.Errorf("matrix = %v, want %v", got, geom.Matrix2dFromArray(want))
	}
}

func assertXY(t *testing.T, got geom.XY, x, y float64) {
	t.Helper()
	if !got.IsEqual(geom.NewXY(x, y), 1e-9) {
		t.Errorf("got %v, want XY(%g, %g)", got, x, y)
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

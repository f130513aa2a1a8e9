package geom_test

import (
	"math"
	"testing"

	"github.com/chazu/geomkit/pkg/geom"
)

func TestPoint2d(t *testing.T) {
	a, b := geom.NewPoint2d(0, 0), geom.NewPoint2d(3, 4)
	if a.Distance(b) != 5 || a.SquareDistance(b) != 25 {
		t.Errorf("distance = %g / %g", a.Distance(b), a.SquareDistance(b))
	}
	if !b.IsEqual(geom.NewPoint2d(3, 4+1e-9), 1e-7) {
		t.Error("IsEqual within tolerance")
	}

	tests := []struct {
		name string
		got  geom.Point2d
		x, y float64
	}{
		{"mirror point", b.Mirrored(geom.NewPoint2d(1, 1)), -1, -2},
		{"mirror axis", b.MirroredAxis(geom.OX2d()), 3, -4},
		{"scaled", b.Scaled(geom.NewPoint2d(1, 0), 2), 5, 8},
		{"translated", b.Translated(geom.NewVector2d(-3, 1)), 0, 5},
		{"translated by", b.TranslatedBy(a, geom.NewPoint2d(1, 1)), 4, 5},
		{"rotated", geom.NewPoint2d(2, 1).Rotated(geom.NewPoint2d(1, 1), math.Pi), 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertXY(t, tc.got.XY(), tc.x, tc.y)
		})
	}

	var tr geom.Trsf2d
	tr.SetMirrorPoint(geom.NewPoint2d(1, 1))
	if got := b.Transformed(tr); !got.IsEqual(b.Mirrored(geom.NewPoint2d(1, 1)), eps) {
		t.Errorf("Transformed = %v", got)
	}
}

func TestPoint3d(t *testing.T) {
	a, b := geom.NewPoint3d(1, 2, 3), geom.NewPoint3d(1, 2, 5)
	if a.Distance(b) != 2 {
		t.Errorf("distance = %g", a.Distance(b))
	}
	if got := a.BaryCenter(1, b, 1); !got.IsEqual(geom.NewPoint3d(1, 2, 4), eps) {
		t.Errorf("bary center = %v", got)
	}
	if got := a.BaryCenter(3, b, 1); !got.IsEqual(geom.NewPoint3d(1, 2, 3.5), eps) {
		t.Errorf("weighted bary center = %v", got)
	}
	if got := a.Mirrored(geom.Origin3d); got != geom.NewPoint3d(-1, -2, -3) {
		t.Errorf("mirror = %v", got)
	}
	if got := a.MirroredAxis(geom.OZ()); !got.IsEqual(geom.NewPoint3d(-1, -2, 3), eps) {
		t.Errorf("mirror axis = %v", got)
	}
	if got := geom.NewPoint3d(1, 0, 7).Rotated(geom.OZ(), math.Pi/2); !got.IsEqual(geom.NewPoint3d(0, 1, 7), 1e-12) {
		t.Errorf("rotated = %v", got)
	}
	if got := a.Scaled(geom.Origin3d, 2); got != geom.NewPoint3d(2, 4, 6) {
		t.Errorf("scaled = %v", got)
	}
	if got := a.Translated(geom.VZ); got != geom.NewPoint3d(1, 2, 4) {
		t.Errorf("translated = %v", got)
	}
}

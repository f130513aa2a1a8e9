package sdfx

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/interop"
)

// sdfxProfile wraps an sdf.SDF2 to implement kernel.Profile.
type sdfxProfile struct {
	s sdf.SDF2
}

func (p *sdfxProfile) Bounds() (min, max [2]float64) {
	bb := p.s.BoundingBox()
	return [2]float64{bb.Min.X, bb.Min.Y}, [2]float64{bb.Max.X, bb.Max.Y}
}

// trsfSDF2 is inner moved by a similarity transform. A point is pulled back
// through the inverse and the distance scaled by |scale|, which keeps the
// field a true distance since similarities scale all lengths equally.
type trsfSDF2 struct {
	inner sdf.SDF2
	inv   geom.Trsf2d
	scale float64
	bb    sdf.Box2
}

// newTrsfSDF2 expects an invertible t; callers check with t.Inverted first.
func newTrsfSDF2(inner sdf.SDF2, t geom.Trsf2d) *trsfSDF2 {
	inv, _ := t.Inverted()
	return &trsfSDF2{
		inner: inner,
		inv:   inv,
		scale: math.Abs(t.ScaleFactor()),
		bb:    transformBox2(inner.BoundingBox(), t),
	}
}

func (s *trsfSDF2) Evaluate(p v2.Vec) float64 {
	q := s.inv.TransformXY(interop.V2ToXY(p))
	return s.inner.Evaluate(interop.XYToV2(q)) * s.scale
}

func (s *trsfSDF2) BoundingBox() sdf.Box2 {
	return s.bb
}

// transformBox2 returns the axis-aligned box around the image of b's
// corners under t.
func transformBox2(b sdf.Box2, t geom.Trsf2d) sdf.Box2 {
	corners := [4]geom.XY{
		geom.NewXY(b.Min.X, b.Min.Y),
		geom.NewXY(b.Max.X, b.Min.Y),
		geom.NewXY(b.Max.X, b.Max.Y),
		geom.NewXY(b.Min.X, b.Max.Y),
	}
	lo := v2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi := v2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range corners {
		p := t.TransformXY(c)
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return sdf.Box2{Min: lo, Max: hi}
}

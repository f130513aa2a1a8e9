package geom

import (
	"fmt"
	"math"
)

// Trsf2d is a planar similarity transform
//
//	p' = scale · matrix · p + translation
//
// Mirrors are stored with a scale of -1. The zero value is not usable; start
// from NewTrsf2d.
type Trsf2d struct {
	scale  float64
	form   TrsfForm
	matrix Matrix2d
	trans  XY
}

// NewTrsf2d returns the identity transform.
func NewTrsf2d() Trsf2d {
	return Trsf2d{scale: 1, form: Identity, matrix: Identity2d()}
}

func (t Trsf2d) String() string {
	return fmt.Sprintf("Trsf2d(scale: %g, form: %v, matrix: %v, translation: %v)",
		t.scale, t.form, t.matrix, t.trans)
}

func (t Trsf2d) ScaleFactor() float64 { return t.scale }
func (t Trsf2d) Form() TrsfForm       { return t.form }
func (t Trsf2d) Matrix() Matrix2d     { return t.matrix }
func (t Trsf2d) Translation() XY      { return t.trans }

// TranslationPart is an alias of Translation.
func (t Trsf2d) TranslationPart() XY { return t.trans }

// HVectorialPart returns scale · matrix, the full linear part.
func (t Trsf2d) HVectorialPart() Matrix2d { return t.matrix.Scaled(t.scale) }

// SetScaleFactor stores s without touching the rest. A null scale would make
// the transform non-invertible and is rejected with ErrNullScale.
func (t *Trsf2d) SetScaleFactor(s float64) error {
	if math.Abs(s) <= MinPositive {
		return ErrNullScale
	}
	t.scale = s
	return nil
}

func (t *Trsf2d) SetForm(f TrsfForm)     { t.form = f }
func (t *Trsf2d) SetMatrix(m Matrix2d)   { t.matrix = m }
func (t *Trsf2d) SetTranslation(v XY)    { t.trans = v }
func (t *Trsf2d) SetIdentity()           { *t = NewTrsf2d() }

// Value returns the element at (row, col) of the 2x3 matrix
// [scale·matrix | translation]. Rows are 0..1, columns 0..2.
func (t Trsf2d) Value(row, col int) float64 {
	if col == 2 {
		return t.trans.At(row)
	}
	return t.scale * t.matrix.M[row][col]
}

// SetMirrorPoint makes t the point symmetry through p.
func (t *Trsf2d) SetMirrorPoint(p Point2d) {
	t.form = PointMirror
	t.scale = -1
	t.matrix = Identity2d()
	t.trans = p.xy.Scaled(2)
}

// SetMirrorAxis makes t the reflection across the line a.
func (t *Trsf2d) SetMirrorAxis(a Axis2d) {
	vx, vy := a.Direction.xy.X, a.Direction.xy.Y
	x0, y0 := a.Location.xy.X, a.Location.xy.Y
	t.form = Ax1Mirror
	t.scale = -1
	t.matrix = NewMatrix2d(
		1-2*vx*vx, -2*vx*vy,
		-2*vx*vy, 1-2*vy*vy,
	)
	t.trans = XY{
		X: -2 * ((vx*vx-1)*x0 + vx*vy*y0),
		Y: -2 * (vx*vy*x0 + (vy*vy-1)*y0),
	}
}

// SetRotation makes t the counter-clockwise rotation by angle about center.
func (t *Trsf2d) SetRotation(center Point2d, angle float64) {
	t.form = Rotation
	t.scale = 1
	t.matrix.SetRotation(angle)
	t.trans = center.xy.Sub(center.xy.Multiplied(t.matrix))
}

// SetScale makes t the homothety of ratio s centered at center.
func (t *Trsf2d) SetScale(center Point2d, s float64) error {
	if math.Abs(s) <= MinPositive {
		return ErrNullScale
	}
	t.form = Scale
	t.scale = s
	t.matrix = Identity2d()
	t.trans = center.xy.Scaled(1 - s)
	return nil
}

// SetTranslationVector makes t the translation by v.
func (t *Trsf2d) SetTranslationVector(v Vector2d) {
	t.form = Translation
	t.scale = 1
	t.matrix = Identity2d()
	t.trans = v.xy
}

// SetTranslationPoints makes t the translation carrying p1 onto p2.
func (t *Trsf2d) SetTranslationPoints(p1, p2 Point2d) {
	t.SetTranslationVector(Vector2dFromPoints(p1, p2))
}

// IsNegative reports whether t reverses orientation. In the plane the sign
// of the scale does not matter, only that of det(matrix).
func (t Trsf2d) IsNegative() bool {
	return t.matrix.Determinant() < 0
}

// RotationAngle returns the angle of the rotation part of t in (-π, π].
// It is only meaningful when t is not negative.
func (t Trsf2d) RotationAngle() float64 {
	return math.Atan2(t.scale*t.matrix.M[1][0], t.scale*t.matrix.M[0][0])
}

// Multiplied returns t ∘ o: the transform that applies o first, then t.
func (t Trsf2d) Multiplied(o Trsf2d) Trsf2d {
	return Trsf2d{
		scale:  t.scale * o.scale,
		form:   composedForm(t.form, o.form),
		matrix: t.matrix.Multiplied(o.matrix),
		trans:  o.trans.Multiplied(t.matrix).Scaled(t.scale).Add(t.trans),
	}
}

// PreMultiplied returns o ∘ t.
func (t Trsf2d) PreMultiplied(o Trsf2d) Trsf2d {
	return o.Multiplied(t)
}

func composedForm(outer, inner TrsfForm) TrsfForm {
	switch {
	case outer == Identity:
		return inner
	case inner == Identity:
		return outer
	case outer == Translation && inner == Translation:
		return Translation
	case outer == Rotation && inner == Rotation:
		return Rotation
	case outer == Scale && inner == Scale:
		return Scale
	case outer == PointMirror && inner == PointMirror:
		return Translation
	}
	return CompoundTrsf
}

// Inverted returns the transform undoing t.
func (t Trsf2d) Inverted() (Trsf2d, error) {
	if math.Abs(t.scale) <= MinPositive {
		return t, ErrNullScale
	}
	inv, err := t.matrix.Inverted()
	if err != nil {
		return t, err
	}
	s := 1 / t.scale
	return Trsf2d{
		scale:  s,
		form:   t.form,
		matrix: inv,
		trans:  t.trans.Multiplied(inv).Scaled(-s),
	}, nil
}

// Invert replaces t by its inverse. On error t is unchanged.
func (t *Trsf2d) Invert() error {
	inv, err := t.Inverted()
	if err != nil {
		return err
	}
	*t = inv
	return nil
}

// Powered composes t with itself n times by repeated squaring. Negative n
// raises the inverse.
func (t Trsf2d) Powered(n int) (Trsf2d, error) {
	if n == 0 {
		return NewTrsf2d(), nil
	}
	base := t
	if n < 0 {
		inv, err := t.Inverted()
		if err != nil {
			return t, err
		}
		base = inv
	}
	result := NewTrsf2d()
	for k := magnitude(n); k > 0; k >>= 1 {
		if k&1 == 1 {
			result = result.Multiplied(base)
		}
		if k > 1 {
			base = base.Multiplied(base)
		}
	}
	return result, nil
}

// TransformXY applies t to a raw coordinate pair.
func (t Trsf2d) TransformXY(c XY) XY {
	return c.Multiplied(t.matrix).Scaled(t.scale).Add(t.trans)
}

func (t Trsf2d) TransformPoint(p Point2d) Point2d {
	return Point2d{t.TransformXY(p.xy)}
}

// TransformVector applies the linear part only.
func (t Trsf2d) TransformVector(v Vector2d) Vector2d {
	return Vector2d{v.xy.Multiplied(t.matrix).Scaled(t.scale)}
}

// TransformDirection maps d through the linear part and renormalizes.
func (t Trsf2d) TransformDirection(d Direction2d) (Direction2d, error) {
	return Direction2dFromXY(d.xy.Multiplied(t.matrix).Scaled(t.scale))
}

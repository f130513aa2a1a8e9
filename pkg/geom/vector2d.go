package geom

import (
	"fmt"
	"math"
)

// Vector2d is a displacement in the plane. Unlike Direction2d it may have
// any length, including zero.
type Vector2d struct {
	xy XY
}

var (
	VX = Vector2d{XY{1, 0}}
	VY = Vector2d{XY{0, 1}}
)

func NewVector2d(x, y float64) Vector2d {
	return Vector2d{XY{x, y}}
}

func Vector2dFromXY(c XY) Vector2d {
	return Vector2d{c}
}

// Vector2dFromPoints returns the vector from p1 to p2.
func Vector2dFromPoints(p1, p2 Point2d) Vector2d {
	return Vector2d{p2.xy.Sub(p1.xy)}
}

// Vector2dFromDirection returns the unit vector along d.
func Vector2dFromDirection(d Direction2d) Vector2d {
	return Vector2d{d.xy}
}

func (v Vector2d) String() string {
	return fmt.Sprintf("Vector2d(%g, %g)", v.xy.X, v.xy.Y)
}

func (v Vector2d) X() float64             { return v.xy.X }
func (v Vector2d) Y() float64             { return v.xy.Y }
func (v Vector2d) XY() XY                 { return v.xy }
func (v Vector2d) Coord() (x, y float64)  { return v.xy.X, v.xy.Y }
func (v *Vector2d) SetCoord(x, y float64) { v.xy = XY{x, y} }

func (v Vector2d) Length() float64       { return v.xy.Modulus() }
func (v Vector2d) SquareLength() float64 { return v.xy.SquareModulus() }

func (v Vector2d) Add(o Vector2d) Vector2d    { return Vector2d{v.xy.Add(o.xy)} }
func (v Vector2d) Sub(o Vector2d) Vector2d    { return Vector2d{v.xy.Sub(o.xy)} }
func (v Vector2d) Scaled(s float64) Vector2d  { return Vector2d{v.xy.Scaled(s)} }
func (v Vector2d) Divided(s float64) Vector2d { return Vector2d{v.xy.Divided(s)} }
func (v Vector2d) Reversed() Vector2d         { return Vector2d{v.xy.Reversed()} }

func (v Vector2d) Dot(o Vector2d) float64            { return v.xy.Dot(o.xy) }
func (v Vector2d) Cross(o Vector2d) float64          { return v.xy.Cross(o.xy) }
func (v Vector2d) CrossMagnitude(o Vector2d) float64 { return v.xy.CrossMagnitude(o.xy) }

// Normalized returns the unit vector along v, or ErrZeroVector.
func (v Vector2d) Normalized() (Vector2d, error) {
	n, err := v.xy.Normalized()
	if err != nil {
		return v, err
	}
	return Vector2d{n}, nil
}

// AngleTo returns the signed angle in (-π, π] that rotates v onto o.
func (v Vector2d) AngleTo(o Vector2d) (float64, error) {
	a, err := v.xy.Normalized()
	if err != nil {
		return 0, err
	}
	b, err := o.xy.Normalized()
	if err != nil {
		return 0, err
	}
	return signedAngle(a.Dot(b), a.Cross(b)), nil
}

// IsEqual reports whether the lengths agree within linTol and, when both
// vectors are longer than linTol, their directions agree within angTol.
func (v Vector2d) IsEqual(o Vector2d, linTol, angTol float64) (bool, error) {
	n1, n2 := v.Length(), o.Length()
	sameLength := math.Abs(n1-n2) <= linTol
	if n1 <= linTol || n2 <= linTol {
		return sameLength, nil
	}
	ang, err := v.AngleTo(o)
	if err != nil {
		return false, err
	}
	return sameLength && math.Abs(ang) <= angTol, nil
}

func (v Vector2d) IsOrthogonal(o Vector2d, angTol float64) (bool, error) {
	ang, err := v.AngleTo(o)
	if err != nil {
		return false, err
	}
	return isOrthogonalAngle(ang, angTol), nil
}

func (v Vector2d) IsOpposite(o Vector2d, angTol float64) (bool, error) {
	ang, err := v.AngleTo(o)
	if err != nil {
		return false, err
	}
	return isOppositeAngle(ang, angTol), nil
}

func (v Vector2d) IsParallel(o Vector2d, angTol float64) (bool, error) {
	ang, err := v.AngleTo(o)
	if err != nil {
		return false, err
	}
	return isParallelAngle(ang, angTol), nil
}

// Mirrored reflects v across the line spanned by axis. A null axis is an
// error.
func (v Vector2d) Mirrored(axis Vector2d) (Vector2d, error) {
	d, err := axis.xy.Normalized()
	if err != nil {
		return v, err
	}
	return Vector2d{mirrorXY(v.xy, d)}, nil
}

// MirroredAxis reflects v across the direction of a; a's location plays no
// part for a free vector.
func (v Vector2d) MirroredAxis(a Axis2d) Vector2d {
	return Vector2d{mirrorXY(v.xy, a.Direction.xy)}
}

// Rotated returns v turned counter-clockwise by angle radians.
func (v Vector2d) Rotated(angle float64) Vector2d {
	return Vector2d{v.xy.Multiplied(Rotation2d(angle))}
}

// Transformed applies the linear part of t; translation does not move a
// vector.
func (v Vector2d) Transformed(t Trsf2d) Vector2d {
	return t.TransformVector(v)
}

// LinearFormVector2 returns a1*v1 + a2*v2.
func LinearFormVector2(a1 float64, v1 Vector2d, a2 float64, v2 Vector2d) Vector2d {
	return Vector2d{LinearForm2(a1, v1.xy, a2, v2.xy)}
}

// LinearFormVector3 returns a1*v1 + a2*v2 + v3.
func LinearFormVector3(a1 float64, v1 Vector2d, a2 float64, v2, v3 Vector2d) Vector2d {
	return Vector2d{LinearForm3(a1, v1.xy, a2, v2.xy, v3.xy)}
}

// mirrorXY reflects c across the line through the origin along unit d:
// 2(c·d)d - c.
func mirrorXY(c, d XY) XY {
	return d.Scaled(2 * c.Dot(d)).Sub(c)
}

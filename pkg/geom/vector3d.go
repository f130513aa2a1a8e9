package geom

import (
	"fmt"
	"math"
)

// Vector3d is a displacement in space.
type Vector3d struct {
	xyz XYZ
}

var (
	VX3 = Vector3d{XYZ{1, 0, 0}}
	VY3 = Vector3d{XYZ{0, 1, 0}}
	VZ  = Vector3d{XYZ{0, 0, 1}}
)

func NewVector3d(x, y, z float64) Vector3d {
	return Vector3d{XYZ{x, y, z}}
}

func Vector3dFromXYZ(c XYZ) Vector3d {
	return Vector3d{c}
}

// Vector3dFromPoints returns the vector from p1 to p2.
func Vector3dFromPoints(p1, p2 Point3d) Vector3d {
	return Vector3d{p2.xyz.Sub(p1.xyz)}
}

func Vector3dFromDirection(d Direction3d) Vector3d {
	return Vector3d{d.xyz}
}

func (v Vector3d) String() string {
	return fmt.Sprintf("Vector3d(%g, %g, %g)", v.xyz.X, v.xyz.Y, v.xyz.Z)
}

func (v Vector3d) X() float64                 { return v.xyz.X }
func (v Vector3d) Y() float64                 { return v.xyz.Y }
func (v Vector3d) Z() float64                 { return v.xyz.Z }
func (v Vector3d) XYZ() XYZ                   { return v.xyz }
func (v Vector3d) Coord() (x, y, z float64)   { return v.xyz.X, v.xyz.Y, v.xyz.Z }
func (v *Vector3d) SetCoord(x, y, z float64)  { v.xyz = XYZ{x, y, z} }
func (v Vector3d) Length() float64            { return v.xyz.Modulus() }
func (v Vector3d) SquareLength() float64      { return v.xyz.SquareModulus() }
func (v Vector3d) Add(o Vector3d) Vector3d    { return Vector3d{v.xyz.Add(o.xyz)} }
func (v Vector3d) Sub(o Vector3d) Vector3d    { return Vector3d{v.xyz.Sub(o.xyz)} }
func (v Vector3d) Scaled(s float64) Vector3d  { return Vector3d{v.xyz.Scaled(s)} }
func (v Vector3d) Divided(s float64) Vector3d { return Vector3d{v.xyz.Divided(s)} }
func (v Vector3d) Reversed() Vector3d         { return Vector3d{v.xyz.Reversed()} }
func (v Vector3d) Dot(o Vector3d) float64     { return v.xyz.Dot(o.xyz) }
func (v Vector3d) Cross(o Vector3d) Vector3d  { return Vector3d{v.xyz.Cross(o.xyz)} }

func (v Vector3d) CrossMagnitude(o Vector3d) float64 {
	return v.xyz.CrossMagnitude(o.xyz)
}

// DotCross returns the triple product v · (v1 × v2).
func (v Vector3d) DotCross(v1, v2 Vector3d) float64 {
	return v.xyz.DotCross(v1.xyz, v2.xyz)
}

func (v Vector3d) Normalized() (Vector3d, error) {
	n, err := v.xyz.Normalized()
	if err != nil {
		return v, err
	}
	return Vector3d{n}, nil
}

// AngleTo returns the unsigned angle in [0, π] between v and o.
func (v Vector3d) AngleTo(o Vector3d) (float64, error) {
	a, err := v.xyz.Normalized()
	if err != nil {
		return 0, err
	}
	b, err := o.xyz.Normalized()
	if err != nil {
		return 0, err
	}
	return unsignedAngle(a.Dot(b), a.CrossMagnitude(b)), nil
}

// IsEqual follows Vector2d.IsEqual.
func (v Vector3d) IsEqual(o Vector3d, linTol, angTol float64) (bool, error) {
	n1, n2 := v.Length(), o.Length()
	sameLength := math.Abs(n1-n2) <= linTol
	if n1 <= linTol || n2 <= linTol {
		return sameLength, nil
	}
	ang, err := v.AngleTo(o)
	if err != nil {
		return false, err
	}
	return sameLength && ang <= angTol, nil
}

func (v Vector3d) IsOrthogonal(o Vector3d, angTol float64) (bool, error) {
	ang, err := v.AngleTo(o)
	if err != nil {
		return false, err
	}
	return isOrthogonalAngle(ang, angTol), nil
}

func (v Vector3d) IsOpposite(o Vector3d, angTol float64) (bool, error) {
	ang, err := v.AngleTo(o)
	if err != nil {
		return false, err
	}
	return isOppositeAngle(ang, angTol), nil
}

func (v Vector3d) IsParallel(o Vector3d, angTol float64) (bool, error) {
	ang, err := v.AngleTo(o)
	if err != nil {
		return false, err
	}
	return isParallelAngle(ang, angTol), nil
}

// Mirrored reflects v across the line spanned by axis.
func (v Vector3d) Mirrored(axis Vector3d) (Vector3d, error) {
	d, err := axis.xyz.Normalized()
	if err != nil {
		return v, err
	}
	return Vector3d{mirrorXYZ(v.xyz, d)}, nil
}

func (v Vector3d) MirroredAxis(a Axis3d) Vector3d {
	return Vector3d{mirrorXYZ(v.xyz, a.Direction.xyz)}
}

// Rotated turns v about the direction of a by angle radians.
func (v Vector3d) Rotated(a Axis3d, angle float64) Vector3d {
	var m Matrix3d
	m.SetRotation(a.Direction, angle)
	return Vector3d{v.xyz.Multiplied(m)}
}

func mirrorXYZ(c, d XYZ) XYZ {
	return d.Scaled(2 * c.Dot(d)).Sub(c)
}

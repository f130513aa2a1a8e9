package geom

import (
	"fmt"
	"math"
)

// Direction2d is a unit vector. Every constructor and setter normalizes its
// input, so a Direction2d built through this package always has length 1.
// The zero value is not a valid direction; start from DX or DY instead.
type Direction2d struct {
	xy XY
}

var (
	DX = Direction2d{XY{1, 0}}
	DY = Direction2d{XY{0, 1}}
)

// NewDirection2d normalizes (x, y). It fails with ErrZeroVector for the null
// vector.
func NewDirection2d(x, y float64) (Direction2d, error) {
	return Direction2dFromXY(XY{x, y})
}

func Direction2dFromXY(c XY) (Direction2d, error) {
	n, err := c.Normalized()
	if err != nil {
		return Direction2d{}, err
	}
	return Direction2d{n}, nil
}

func Direction2dFromVector(v Vector2d) (Direction2d, error) {
	return Direction2dFromXY(v.xy)
}

func (d Direction2d) String() string {
	return fmt.Sprintf("Direction2d(%g, %g)", d.xy.X, d.xy.Y)
}

func (d Direction2d) X() float64            { return d.xy.X }
func (d Direction2d) Y() float64            { return d.xy.Y }
func (d Direction2d) XY() XY                { return d.xy }
func (d Direction2d) Coord() (x, y float64) { return d.xy.X, d.xy.Y }
func (d Direction2d) Vector() Vector2d      { return Vector2d{d.xy} }

// SetCoord normalizes and stores (x, y). On error d is unchanged.
func (d *Direction2d) SetCoord(x, y float64) error {
	n, err := XY{x, y}.Normalized()
	if err != nil {
		return err
	}
	d.xy = n
	return nil
}

// SetXY is SetCoord for an XY.
func (d *Direction2d) SetXY(c XY) error {
	return d.SetCoord(c.X, c.Y)
}

// Angle returns the signed angle in (-π, π] from d to o.
func (d Direction2d) Angle(o Direction2d) float64 {
	return signedAngle(d.Dot(o), d.Cross(o))
}

// IsEqual reports whether the angle between d and o is within angTol.
func (d Direction2d) IsEqual(o Direction2d, angTol float64) bool {
	return math.Abs(d.Angle(o)) <= angTol
}

func (d Direction2d) IsOrthogonal(o Direction2d, angTol float64) bool {
	return isOrthogonalAngle(d.Angle(o), angTol)
}

func (d Direction2d) IsOpposite(o Direction2d, angTol float64) bool {
	return isOppositeAngle(d.Angle(o), angTol)
}

func (d Direction2d) IsParallel(o Direction2d, angTol float64) bool {
	return isParallelAngle(d.Angle(o), angTol)
}

func (d Direction2d) Dot(o Direction2d) float64   { return d.xy.Dot(o.xy) }
func (d Direction2d) Cross(o Direction2d) float64 { return d.xy.Cross(o.xy) }
func (d Direction2d) Reversed() Direction2d       { return Direction2d{d.xy.Reversed()} }

// Rotated turns d counter-clockwise by angle radians.
func (d Direction2d) Rotated(angle float64) Direction2d {
	return Direction2d{d.xy.Multiplied(Rotation2d(angle))}
}

// Mirrored reflects d across the line along o.
func (d Direction2d) Mirrored(o Direction2d) Direction2d {
	return Direction2d{mirrorXY(d.xy, o.xy)}
}

func (d Direction2d) MirroredAxis(a Axis2d) Direction2d {
	return d.Mirrored(a.Direction)
}

// Transformed applies the linear part of t and renormalizes. A transform
// that collapses d, such as one built from a singular matrix, yields
// ErrZeroVector.
func (d Direction2d) Transformed(t Trsf2d) (Direction2d, error) {
	return t.TransformDirection(d)
}

package geom

import "fmt"

// Direction3d is a unit vector in space. Like Direction2d, it is normalized
// on every construction and update.
type Direction3d struct {
	xyz XYZ
}

var (
	DX3 = Direction3d{XYZ{1, 0, 0}}
	DY3 = Direction3d{XYZ{0, 1, 0}}
	DZ  = Direction3d{XYZ{0, 0, 1}}
)

func NewDirection3d(x, y, z float64) (Direction3d, error) {
	return Direction3dFromXYZ(XYZ{x, y, z})
}

func Direction3dFromXYZ(c XYZ) (Direction3d, error) {
	n, err := c.Normalized()
	if err != nil {
		return Direction3d{}, err
	}
	return Direction3d{n}, nil
}

func Direction3dFromVector(v Vector3d) (Direction3d, error) {
	return Direction3dFromXYZ(v.xyz)
}

func (d Direction3d) String() string {
	return fmt.Sprintf("Direction3d(%g, %g, %g)", d.xyz.X, d.xyz.Y, d.xyz.Z)
}

func (d Direction3d) X() float64               { return d.xyz.X }
func (d Direction3d) Y() float64               { return d.xyz.Y }
func (d Direction3d) Z() float64               { return d.xyz.Z }
func (d Direction3d) XYZ() XYZ                 { return d.xyz }
func (d Direction3d) Coord() (x, y, z float64) { return d.xyz.X, d.xyz.Y, d.xyz.Z }
func (d Direction3d) Vector() Vector3d         { return Vector3d{d.xyz} }

// SetCoord normalizes and stores (x, y, z). On error d is unchanged.
func (d *Direction3d) SetCoord(x, y, z float64) error {
	n, err := XYZ{x, y, z}.Normalized()
	if err != nil {
		return err
	}
	d.xyz = n
	return nil
}

func (d *Direction3d) SetXYZ(c XYZ) error {
	return d.SetCoord(c.X, c.Y, c.Z)
}

// Angle returns the unsigned angle in [0, π] between d and o.
func (d Direction3d) Angle(o Direction3d) float64 {
	return unsignedAngle(d.Dot(o), d.xyz.CrossMagnitude(o.xyz))
}

func (d Direction3d) IsEqual(o Direction3d, angTol float64) bool {
	return d.Angle(o) <= angTol
}

func (d Direction3d) IsOrthogonal(o Direction3d, angTol float64) bool {
	return isOrthogonalAngle(d.Angle(o), angTol)
}

func (d Direction3d) IsOpposite(o Direction3d, angTol float64) bool {
	return isOppositeAngle(d.Angle(o), angTol)
}

func (d Direction3d) IsParallel(o Direction3d, angTol float64) bool {
	return isParallelAngle(d.Angle(o), angTol)
}

func (d Direction3d) Dot(o Direction3d) float64 { return d.xyz.Dot(o.xyz) }
func (d Direction3d) Reversed() Direction3d     { return Direction3d{d.xyz.Reversed()} }

// Cross returns the normalized d × o. Parallel directions have no cross
// direction and yield ErrZeroVector.
func (d Direction3d) Cross(o Direction3d) (Direction3d, error) {
	return Direction3dFromXYZ(d.xyz.Cross(o.xyz))
}

// CrossCross returns the normalized d × (v1 × v2).
func (d Direction3d) CrossCross(v1, v2 Direction3d) (Direction3d, error) {
	return Direction3dFromXYZ(d.xyz.CrossCross(v1.xyz, v2.xyz))
}

func (d Direction3d) DotCross(v1, v2 Direction3d) float64 {
	return d.xyz.DotCross(v1.xyz, v2.xyz)
}

func (d Direction3d) Mirrored(o Direction3d) Direction3d {
	return Direction3d{mirrorXYZ(d.xyz, o.xyz)}
}

func (d Direction3d) MirroredAxis(a Axis3d) Direction3d {
	return d.Mirrored(a.Direction)
}

// Rotated turns d about the direction of a. The result is renormalized to
// absorb rounding.
func (d Direction3d) Rotated(a Axis3d, angle float64) Direction3d {
	r := Vector3d{d.xyz}.Rotated(a, angle).xyz
	if n := r.Modulus(); n > MinPositive {
		r = r.Divided(n)
	}
	return Direction3d{r}
}

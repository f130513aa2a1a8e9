package geom

import "fmt"

// CoordinateSystem2d is a right-handed frame in the plane. The Y direction
// is always XDirection turned by +90°.
type CoordinateSystem2d struct {
	Origin     Point2d
	XDirection Direction2d
}

// DefaultCoordinateSystem2d is the frame at the origin aligned with DX.
func DefaultCoordinateSystem2d() CoordinateSystem2d {
	return CoordinateSystem2d{Origin2d, DX}
}

func NewCoordinateSystem2d(origin Point2d, x Direction2d) CoordinateSystem2d {
	return CoordinateSystem2d{Origin: origin, XDirection: x}
}

func (c CoordinateSystem2d) YDirection() Direction2d {
	return Direction2d{XY{-c.XDirection.xy.Y, c.XDirection.xy.X}}
}

func (c CoordinateSystem2d) XAxis() Axis2d { return Axis2d{c.Origin, c.XDirection} }
func (c CoordinateSystem2d) YAxis() Axis2d { return Axis2d{c.Origin, c.YDirection()} }

func (c CoordinateSystem2d) String() string {
	return fmt.Sprintf("CoordinateSystem2d(%v, %v)", c.Origin, c.XDirection)
}

// CoordinateSystem3d is a right-handed frame in space: Axis carries the
// origin and the main (Z) direction, and XDirection, YDirection complete an
// orthonormal basis with YDirection = main × XDirection.
type CoordinateSystem3d struct {
	Axis       Axis3d
	XDirection Direction3d
	YDirection Direction3d
}

// DefaultCoordinateSystem3d is the world frame.
func DefaultCoordinateSystem3d() CoordinateSystem3d {
	return CoordinateSystem3d{OZ(), DX3, DY3}
}

// NewCoordinateSystem3d builds the frame whose main direction is axis and
// whose X direction is the part of vx orthogonal to it. vx parallel to the
// main direction fails with ErrParallel.
func NewCoordinateSystem3d(axis Axis3d, vx Direction3d) (CoordinateSystem3d, error) {
	n := axis.Direction.xyz
	x := vx.xyz.Sub(n.Scaled(vx.xyz.Dot(n)))
	xd, err := Direction3dFromXYZ(x)
	if err != nil || x.Modulus() <= Confusion {
		return CoordinateSystem3d{}, fmt.Errorf("coordinate system X direction %v: %w", vx, ErrParallel)
	}
	yd, err := Direction3dFromXYZ(n.Cross(xd.xyz))
	if err != nil {
		return CoordinateSystem3d{}, fmt.Errorf("coordinate system Y direction: %w", ErrParallel)
	}
	return CoordinateSystem3d{Axis: axis, XDirection: xd, YDirection: yd}, nil
}

// CoordinateSystem3dAt places a frame at origin with the given main
// direction, choosing an X direction automatically.
func CoordinateSystem3dAt(origin Point3d, main Direction3d) CoordinateSystem3d {
	ref := DX3
	if main.IsParallel(DX3, 0.1) {
		ref = DY3
	}
	// ref is never parallel to main here, so the error cannot occur.
	cs, _ := NewCoordinateSystem3d(Axis3d{origin, main}, ref)
	return cs
}

func (c CoordinateSystem3d) Origin() Point3d        { return c.Axis.Location }
func (c CoordinateSystem3d) Direction() Direction3d { return c.Axis.Direction }

func (c CoordinateSystem3d) String() string {
	return fmt.Sprintf("CoordinateSystem3d(%v, %v, %v)", c.Axis, c.XDirection, c.YDirection)
}

package geom

import "fmt"

// Axis2d is an oriented line in the plane.
type Axis2d struct {
	Location  Point2d
	Direction Direction2d
}

// OX2d and OY2d are the coordinate axes through the origin.
func OX2d() Axis2d { return Axis2d{Origin2d, DX} }
func OY2d() Axis2d { return Axis2d{Origin2d, DY} }

func NewAxis2d(loc Point2d, dir Direction2d) Axis2d {
	return Axis2d{Location: loc, Direction: dir}
}

func (a Axis2d) String() string {
	return fmt.Sprintf("Axis2d(%v, %v)", a.Location, a.Direction)
}

func (a Axis2d) Reversed() Axis2d {
	return Axis2d{a.Location, a.Direction.Reversed()}
}

// Angle returns the signed angle between the two axis directions.
func (a Axis2d) Angle(o Axis2d) float64 {
	return a.Direction.Angle(o.Direction)
}

// Distance returns the distance from p to the line.
func (a Axis2d) Distance(p Point2d) float64 {
	return a.Direction.xy.CrossMagnitude(p.xy.Sub(a.Location.xy))
}

// Axis3d is an oriented line in space.
type Axis3d struct {
	Location  Point3d
	Direction Direction3d
}

func OX() Axis3d { return Axis3d{Origin3d, DX3} }
func OY() Axis3d { return Axis3d{Origin3d, DY3} }
func OZ() Axis3d { return Axis3d{Origin3d, DZ} }

func NewAxis3d(loc Point3d, dir Direction3d) Axis3d {
	return Axis3d{Location: loc, Direction: dir}
}

func (a Axis3d) String() string {
	return fmt.Sprintf("Axis3d(%v, %v)", a.Location, a.Direction)
}

func (a Axis3d) Reversed() Axis3d {
	return Axis3d{a.Location, a.Direction.Reversed()}
}

func (a Axis3d) Angle(o Axis3d) float64 {
	return a.Direction.Angle(o.Direction)
}

func (a Axis3d) Distance(p Point3d) float64 {
	return a.Direction.xyz.CrossMagnitude(p.xyz.Sub(a.Location.xyz))
}

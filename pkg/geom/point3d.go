package geom

import "fmt"

// Point3d is a location in space.
type Point3d struct {
	xyz XYZ
}

var Origin3d = Point3d{}

func NewPoint3d(x, y, z float64) Point3d {
	return Point3d{XYZ{x, y, z}}
}

func Point3dFromXYZ(c XYZ) Point3d {
	return Point3d{c}
}

func (p Point3d) String() string {
	return fmt.Sprintf("Point3d(%g, %g, %g)", p.xyz.X, p.xyz.Y, p.xyz.Z)
}

func (p Point3d) X() float64                { return p.xyz.X }
func (p Point3d) Y() float64                { return p.xyz.Y }
func (p Point3d) Z() float64                { return p.xyz.Z }
func (p Point3d) XYZ() XYZ                  { return p.xyz }
func (p Point3d) Coord() (x, y, z float64)  { return p.xyz.X, p.xyz.Y, p.xyz.Z }
func (p *Point3d) SetCoord(x, y, z float64) { p.xyz = XYZ{x, y, z} }

func (p Point3d) Distance(o Point3d) float64 {
	return p.xyz.Sub(o.xyz).Modulus()
}

func (p Point3d) SquareDistance(o Point3d) float64 {
	return p.xyz.Sub(o.xyz).SquareModulus()
}

func (p Point3d) IsEqual(o Point3d, tol float64) bool {
	return p.Distance(o) <= tol
}

// Mirrored returns the point symmetric to p through center.
func (p Point3d) Mirrored(center Point3d) Point3d {
	return Point3d{center.xyz.Scaled(2).Sub(p.xyz)}
}

// MirroredAxis returns the reflection of p across the line a.
func (p Point3d) MirroredAxis(a Axis3d) Point3d {
	rel := p.xyz.Sub(a.Location.xyz)
	return Point3d{a.Location.xyz.Add(mirrorXYZ(rel, a.Direction.xyz))}
}

func (p Point3d) Scaled(center Point3d, s float64) Point3d {
	return Point3d{LinearForm2aXYZ(s, p.xyz.Sub(center.xyz), center.xyz)}
}

func (p Point3d) Translated(v Vector3d) Point3d {
	return Point3d{p.xyz.Add(v.xyz)}
}

func (p Point3d) TranslatedBy(p1, p2 Point3d) Point3d {
	return p.Translated(Vector3dFromPoints(p1, p2))
}

// Rotated turns p about the line a by angle radians.
func (p Point3d) Rotated(a Axis3d, angle float64) Point3d {
	rel := Vector3d{p.xyz.Sub(a.Location.xyz)}.Rotated(a, angle)
	return Point3d{a.Location.xyz.Add(rel.xyz)}
}

// BaryCenter returns the weighted mean (alpha*p + beta*o) / (alpha + beta).
// alpha + beta must not be zero.
func (p Point3d) BaryCenter(alpha float64, o Point3d, beta float64) Point3d {
	return Point3d{LinearForm2XYZ(alpha, p.xyz, beta, o.xyz).Divided(alpha + beta)}
}

package geom

import "fmt"

// Point2d is a location in the plane.
type Point2d struct {
	xy XY
}

// Origin2d is the point (0, 0).
var Origin2d = Point2d{}

func NewPoint2d(x, y float64) Point2d {
	return Point2d{XY{x, y}}
}

func Point2dFromXY(c XY) Point2d {
	return Point2d{c}
}

func (p Point2d) String() string {
	return fmt.Sprintf("Point2d(%g, %g)", p.xy.X, p.xy.Y)
}

func (p Point2d) X() float64             { return p.xy.X }
func (p Point2d) Y() float64             { return p.xy.Y }
func (p Point2d) XY() XY                 { return p.xy }
func (p Point2d) Coord() (x, y float64)  { return p.xy.X, p.xy.Y }
func (p *Point2d) SetCoord(x, y float64) { p.xy = XY{x, y} }

func (p Point2d) Distance(o Point2d) float64 {
	return p.xy.Sub(o.xy).Modulus()
}

func (p Point2d) SquareDistance(o Point2d) float64 {
	return p.xy.Sub(o.xy).SquareModulus()
}

// IsEqual reports whether p and o are within tol of each other.
func (p Point2d) IsEqual(o Point2d, tol float64) bool {
	return p.Distance(o) <= tol
}

// Mirrored returns the point symmetric to p through center.
func (p Point2d) Mirrored(center Point2d) Point2d {
	return Point2d{center.xy.Scaled(2).Sub(p.xy)}
}

// MirroredAxis returns the reflection of p across the line a.
func (p Point2d) MirroredAxis(a Axis2d) Point2d {
	rel := p.xy.Sub(a.Location.xy)
	return Point2d{a.Location.xy.Add(mirrorXY(rel, a.Direction.xy))}
}

// Scaled returns center + s*(p - center).
func (p Point2d) Scaled(center Point2d, s float64) Point2d {
	return Point2d{LinearForm2a(s, p.xy.Sub(center.xy), center.xy)}
}

func (p Point2d) Translated(v Vector2d) Point2d {
	return Point2d{p.xy.Add(v.xy)}
}

// TranslatedBy moves p by the vector from p1 to p2.
func (p Point2d) TranslatedBy(p1, p2 Point2d) Point2d {
	return p.Translated(Vector2dFromPoints(p1, p2))
}

// Rotated turns p counter-clockwise about center.
func (p Point2d) Rotated(center Point2d, angle float64) Point2d {
	rel := p.xy.Sub(center.xy).Multiplied(Rotation2d(angle))
	return Point2d{center.xy.Add(rel)}
}

func (p Point2d) Transformed(t Trsf2d) Point2d {
	return t.TransformPoint(p)
}

package geom

import (
	"fmt"
	"math"
)

// XY is a raw pair of coordinates. It carries no meaning of its own; Point2d,
// Vector2d and Direction2d wrap it.
type XY struct {
	X, Y float64
}

// NewXY returns the pair (x, y).
func NewXY(x, y float64) XY {
	return XY{X: x, Y: y}
}

func (c XY) String() string {
	return fmt.Sprintf("XY(%g, %g)", c.X, c.Y)
}

// Coord returns both coordinates.
func (c XY) Coord() (x, y float64) {
	return c.X, c.Y
}

// SetCoord replaces both coordinates.
func (c *XY) SetCoord(x, y float64) {
	c.X, c.Y = x, y
}

// At returns coordinate i (0 for X, 1 for Y). It panics for any other index.
func (c XY) At(i int) float64 {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	}
	panic(fmt.Sprintf("geom: XY index %d out of range", i))
}

// SetAt replaces coordinate i. It panics for an index other than 0 or 1.
func (c *XY) SetAt(i int, v float64) {
	switch i {
	case 0:
		c.X = v
	case 1:
		c.Y = v
	default:
		panic(fmt.Sprintf("geom: XY index %d out of range", i))
	}
}

// Modulus returns sqrt(X² + Y²).
func (c XY) Modulus() float64 {
	return math.Hypot(c.X, c.Y)
}

// SquareModulus returns X² + Y².
func (c XY) SquareModulus() float64 {
	return c.X*c.X + c.Y*c.Y
}

// IsEqual reports whether each coordinate differs from other's by at most tol.
func (c XY) IsEqual(other XY, tol float64) bool {
	return math.Abs(c.X-other.X) <= tol && math.Abs(c.Y-other.Y) <= tol
}

func (c XY) Add(o XY) XY { return XY{c.X + o.X, c.Y + o.Y} }
func (c XY) Sub(o XY) XY { return XY{c.X - o.X, c.Y - o.Y} }

// Mul multiplies component-wise.
func (c XY) Mul(o XY) XY { return XY{c.X * o.X, c.Y * o.Y} }

// Div divides component-wise.
func (c XY) Div(o XY) XY { return XY{c.X / o.X, c.Y / o.Y} }

func (c XY) AddScalar(s float64) XY { return XY{c.X + s, c.Y + s} }
func (c XY) SubScalar(s float64) XY { return XY{c.X - s, c.Y - s} }
func (c XY) Scaled(s float64) XY    { return XY{c.X * s, c.Y * s} }
func (c XY) Divided(s float64) XY   { return XY{c.X / s, c.Y / s} }
func (c XY) Reversed() XY           { return XY{-c.X, -c.Y} }

// Dot returns the scalar product.
func (c XY) Dot(o XY) float64 {
	return c.X*o.X + c.Y*o.Y
}

// Cross returns the signed scalar X1*Y2 - Y1*X2, the z component of the 3D
// cross product of the two pairs lifted into the plane z = 0.
func (c XY) Cross(o XY) float64 {
	return c.X*o.Y - c.Y*o.X
}

// CrossMagnitude returns |c × o|.
func (c XY) CrossMagnitude(o XY) float64 {
	return math.Abs(c.Cross(o))
}

// CrossSquareMagnitude returns |c × o|².
func (c XY) CrossSquareMagnitude(o XY) float64 {
	z := c.Cross(o)
	return z * z
}

// Normalized returns c scaled to unit length, or ErrZeroVector when c is
// (numerically) the origin.
func (c XY) Normalized() (XY, error) {
	d := c.Modulus()
	if d <= MinPositive {
		return XY{}, ErrZeroVector
	}
	return XY{c.X / d, c.Y / d}, nil
}

// Multiplied returns m · c, treating c as a column.
func (c XY) Multiplied(m Matrix2d) XY {
	return XY{
		X: m.M[0][0]*c.X + m.M[0][1]*c.Y,
		Y: m.M[1][0]*c.X + m.M[1][1]*c.Y,
	}
}

// LinearForm2 returns a1*v1 + a2*v2.
func LinearForm2(a1 float64, v1 XY, a2 float64, v2 XY) XY {
	return XY{a1*v1.X + a2*v2.X, a1*v1.Y + a2*v2.Y}
}

// LinearForm2a returns a1*v1 + v2.
func LinearForm2a(a1 float64, v1, v2 XY) XY {
	return XY{a1*v1.X + v2.X, a1*v1.Y + v2.Y}
}

// LinearForm2b returns v1 + v2.
func LinearForm2b(v1, v2 XY) XY {
	return XY{v1.X + v2.X, v1.Y + v2.Y}
}

// LinearForm3 returns a1*v1 + a2*v2 + v3.
func LinearForm3(a1 float64, v1 XY, a2 float64, v2, v3 XY) XY {
	return XY{a1*v1.X + a2*v2.X + v3.X, a1*v1.Y + a2*v2.Y + v3.Y}
}

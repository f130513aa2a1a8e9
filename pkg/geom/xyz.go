package geom

import (
	"fmt"
	"math"
)

// XYZ is a raw triple of coordinates, the 3D counterpart of XY.
type XYZ struct {
	X, Y, Z float64
}

// NewXYZ returns the triple (x, y, z).
func NewXYZ(x, y, z float64) XYZ {
	return XYZ{X: x, Y: y, Z: z}
}

func (c XYZ) String() string {
	return fmt.Sprintf("XYZ(%g, %g, %g)", c.X, c.Y, c.Z)
}

// Coord returns the three coordinates.
func (c XYZ) Coord() (x, y, z float64) {
	return c.X, c.Y, c.Z
}

// SetCoord replaces the three coordinates.
func (c *XYZ) SetCoord(x, y, z float64) {
	c.X, c.Y, c.Z = x, y, z
}

// At returns coordinate i (0, 1 or 2). It panics for any other index.
func (c XYZ) At(i int) float64 {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.Z
	}
	panic(fmt.Sprintf("geom: XYZ index %d out of range", i))
}

// SetAt replaces coordinate i. It panics for an index outside 0..2.
func (c *XYZ) SetAt(i int, v float64) {
	switch i {
	case 0:
		c.X = v
	case 1:
		c.Y = v
	case 2:
		c.Z = v
	default:
		panic(fmt.Sprintf("geom: XYZ index %d out of range", i))
	}
}

func (c XYZ) Modulus() float64 {
	return math.Hypot(math.Hypot(c.X, c.Y), c.Z)
}

func (c XYZ) SquareModulus() float64 {
	return c.X*c.X + c.Y*c.Y + c.Z*c.Z
}

// IsEqual reports whether each coordinate differs from other's by at most tol.
func (c XYZ) IsEqual(other XYZ, tol float64) bool {
	return math.Abs(c.X-other.X) <= tol &&
		math.Abs(c.Y-other.Y) <= tol &&
		math.Abs(c.Z-other.Z) <= tol
}

func (c XYZ) Add(o XYZ) XYZ { return XYZ{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }
func (c XYZ) Sub(o XYZ) XYZ { return XYZ{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }

// Mul multiplies component-wise.
func (c XYZ) Mul(o XYZ) XYZ { return XYZ{c.X * o.X, c.Y * o.Y, c.Z * o.Z} }

// Div divides component-wise.
func (c XYZ) Div(o XYZ) XYZ { return XYZ{c.X / o.X, c.Y / o.Y, c.Z / o.Z} }

func (c XYZ) AddScalar(s float64) XYZ { return XYZ{c.X + s, c.Y + s, c.Z + s} }
func (c XYZ) SubScalar(s float64) XYZ { return XYZ{c.X - s, c.Y - s, c.Z - s} }
func (c XYZ) Scaled(s float64) XYZ    { return XYZ{c.X * s, c.Y * s, c.Z * s} }
func (c XYZ) Divided(s float64) XYZ   { return XYZ{c.X / s, c.Y / s, c.Z / s} }
func (c XYZ) Reversed() XYZ           { return XYZ{-c.X, -c.Y, -c.Z} }

func (c XYZ) Dot(o XYZ) float64 {
	return c.X*o.X + c.Y*o.Y + c.Z*o.Z
}

// Cross returns the vector product c × o.
func (c XYZ) Cross(o XYZ) XYZ {
	return XYZ{
		X: c.Y*o.Z - c.Z*o.Y,
		Y: c.Z*o.X - c.X*o.Z,
		Z: c.X*o.Y - c.Y*o.X,
	}
}

// CrossMagnitude returns |c × o|.
func (c XYZ) CrossMagnitude(o XYZ) float64 {
	return c.Cross(o).Modulus()
}

// CrossSquareMagnitude returns |c × o|².
func (c XYZ) CrossSquareMagnitude(o XYZ) float64 {
	return c.Cross(o).SquareModulus()
}

// CrossCross returns c × (v1 × v2).
func (c XYZ) CrossCross(v1, v2 XYZ) XYZ {
	return c.Cross(v1.Cross(v2))
}

// DotCross returns the triple product c · (v1 × v2).
func (c XYZ) DotCross(v1, v2 XYZ) float64 {
	return c.Dot(v1.Cross(v2))
}

// Normalized returns c scaled to unit length, or ErrZeroVector.
func (c XYZ) Normalized() (XYZ, error) {
	d := c.Modulus()
	if d <= MinPositive {
		return XYZ{}, ErrZeroVector
	}
	return XYZ{c.X / d, c.Y / d, c.Z / d}, nil
}

// Multiplied returns m · c, treating c as a column.
func (c XYZ) Multiplied(m Matrix3d) XYZ {
	return XYZ{
		X: m.M[0][0]*c.X + m.M[0][1]*c.Y + m.M[0][2]*c.Z,
		Y: m.M[1][0]*c.X + m.M[1][1]*c.Y + m.M[1][2]*c.Z,
		Z: m.M[2][0]*c.X + m.M[2][1]*c.Y + m.M[2][2]*c.Z,
	}
}

// LinearForm2XYZ returns a1*v1 + a2*v2.
func LinearForm2XYZ(a1 float64, v1 XYZ, a2 float64, v2 XYZ) XYZ {
	return v1.Scaled(a1).Add(v2.Scaled(a2))
}

// LinearForm2aXYZ returns a1*v1 + v2.
func LinearForm2aXYZ(a1 float64, v1, v2 XYZ) XYZ {
	return v1.Scaled(a1).Add(v2)
}

// LinearForm2bXYZ returns v1 + v2.
func LinearForm2bXYZ(v1, v2 XYZ) XYZ {
	return v1.Add(v2)
}

// LinearForm3XYZ returns a1*v1 + a2*v2 + v3.
func LinearForm3XYZ(a1 float64, v1 XYZ, a2 float64, v2, v3 XYZ) XYZ {
	return v1.Scaled(a1).Add(v2.Scaled(a2)).Add(v3)
}

// LinearForm3aXYZ returns a1*v1 + a2*v2 + a3*v3.
func LinearForm3aXYZ(a1 float64, v1 XYZ, a2 float64, v2 XYZ, a3 float64, v3 XYZ) XYZ {
	return v1.Scaled(a1).Add(v2.Scaled(a2)).Add(v3.Scaled(a3))
}

// LinearForm4XYZ returns a1*v1 + a2*v2 + a3*v3 + v4.
func LinearForm4XYZ(a1 float64, v1 XYZ, a2 float64, v2 XYZ, a3 float64, v3, v4 XYZ) XYZ {
	return LinearForm3aXYZ(a1, v1, a2, v2, a3, v3).Add(v4)
}

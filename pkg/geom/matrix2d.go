package geom

import (
	"fmt"
	"math"
)

// Matrix2d is a 2x2 matrix stored row-major: M[row][col]. The zero value is
// the zero matrix. Nothing prevents a Matrix2d from being singular; use
// IsSingular before relying on an inverse.
type Matrix2d struct {
	M [2][2]float64
}

// NewMatrix2d returns the matrix
//
//	| m00  m01 |
//	| m10  m11 |
func NewMatrix2d(m00, m01, m10, m11 float64) Matrix2d {
	return Matrix2d{M: [2][2]float64{{m00, m01}, {m10, m11}}}
}

// Matrix2dFromArray wraps a row-major array.
func Matrix2dFromArray(m [2][2]float64) Matrix2d {
	return Matrix2d{M: m}
}

// Matrix2dFromColumns builds the matrix whose columns are c1 and c2.
func Matrix2dFromColumns(c1, c2 XY) Matrix2d {
	return NewMatrix2d(c1.X, c2.X, c1.Y, c2.Y)
}

// Matrix2dFromRows builds the matrix whose rows are r1 and r2.
func Matrix2dFromRows(r1, r2 XY) Matrix2d {
	return NewMatrix2d(r1.X, r1.Y, r2.X, r2.Y)
}

// Identity2d returns the 2x2 identity.
func Identity2d() Matrix2d {
	return NewMatrix2d(1, 0, 0, 1)
}

// Rotation2d returns the counter-clockwise rotation by angle radians.
func Rotation2d(angle float64) Matrix2d {
	var m Matrix2d
	m.SetRotation(angle)
	return m
}

func (m Matrix2d) String() string {
	return fmt.Sprintf("Matrix2d([%g, %g], [%g, %g])", m.M[0][0], m.M[0][1], m.M[1][0], m.M[1][1])
}

// At returns the element at (row, col). Indices outside 0..1 panic.
func (m Matrix2d) At(row, col int) float64 {
	return m.M[row][col]
}

// Set replaces the element at (row, col). Indices outside 0..1 panic.
func (m *Matrix2d) Set(row, col int, v float64) {
	m.M[row][col] = v
}

func (m Matrix2d) Row(i int) [2]float64 {
	return m.M[i]
}

func (m Matrix2d) Col(i int) [2]float64 {
	return [2]float64{m.M[0][i], m.M[1][i]}
}

func (m Matrix2d) RowXY(i int) XY {
	return XY{m.M[i][0], m.M[i][1]}
}

func (m Matrix2d) ColXY(i int) XY {
	return XY{m.M[0][i], m.M[1][i]}
}

func (m *Matrix2d) SetRow(i int, row [2]float64) {
	m.M[i] = row
}

func (m *Matrix2d) SetCol(i int, col [2]float64) {
	m.M[0][i] = col[0]
	m.M[1][i] = col[1]
}

func (m Matrix2d) Diagonal() [2]float64 {
	return [2]float64{m.M[0][0], m.M[1][1]}
}

func (m *Matrix2d) SetDiagonal(d [2]float64) {
	m.M[0][0] = d[0]
	m.M[1][1] = d[1]
}

// SetIdentity overwrites m with the identity.
func (m *Matrix2d) SetIdentity() {
	*m = Identity2d()
}

// SetRotation overwrites m with [[cos, -sin], [sin, cos]].
func (m *Matrix2d) SetRotation(angle float64) {
	sin, cos := math.Sincos(angle)
	*m = NewMatrix2d(cos, -sin, sin, cos)
}

// SetScale overwrites m with s·I.
func (m *Matrix2d) SetScale(s float64) {
	*m = NewMatrix2d(s, 0, 0, s)
}

// Determinant returns m00*m11 - m01*m10.
func (m Matrix2d) Determinant() float64 {
	return m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0]
}

// IsSingular reports whether |det| < MinPositive.
func (m Matrix2d) IsSingular() bool {
	return math.Abs(m.Determinant()) < MinPositive
}

// Inverted returns the inverse of m using the closed-form 2x2 formula.
func (m Matrix2d) Inverted() (Matrix2d, error) {
	det := m.Determinant()
	if math.Abs(det) < MinPositive {
		return m, ErrSingularMatrix
	}
	inv := 1 / det
	return NewMatrix2d(
		m.M[1][1]*inv, -m.M[0][1]*inv,
		-m.M[1][0]*inv, m.M[0][0]*inv,
	), nil
}

// Invert replaces m by its inverse. On error m is left unchanged.
func (m *Matrix2d) Invert() error {
	inv, err := m.Inverted()
	if err != nil {
		return err
	}
	*m = inv
	return nil
}

// Multiplied returns m · o.
func (m Matrix2d) Multiplied(o Matrix2d) Matrix2d {
	return NewMatrix2d(
		m.M[0][0]*o.M[0][0]+m.M[0][1]*o.M[1][0],
		m.M[0][0]*o.M[0][1]+m.M[0][1]*o.M[1][1],
		m.M[1][0]*o.M[0][0]+m.M[1][1]*o.M[1][0],
		m.M[1][0]*o.M[0][1]+m.M[1][1]*o.M[1][1],
	)
}

// LeftMultiplied returns o · m.
func (m Matrix2d) LeftMultiplied(o Matrix2d) Matrix2d {
	return o.Multiplied(m)
}

// Multiply replaces m with m · o.
func (m *Matrix2d) Multiply(o Matrix2d) {
	*m = m.Multiplied(o)
}

// LeftMultiply replaces m with o · m.
func (m *Matrix2d) LeftMultiply(o Matrix2d) {
	*m = o.Multiplied(*m)
}

// Powered returns m raised to the integer power n by repeated squaring.
// Powered(0) is the identity, Powered(-1) the inverse, and any other negative
// n inverts first and then raises to |n|. Only negative powers can fail.
func (m Matrix2d) Powered(n int) (Matrix2d, error) {
	switch n {
	case 0:
		return Identity2d(), nil
	case 1:
		return m, nil
	case -1:
		return m.Inverted()
	}
	base := m
	if n < 0 {
		inv, err := m.Inverted()
		if err != nil {
			return m, err
		}
		base = inv
	}
	result := Identity2d()
	for k := magnitude(n); k > 0; k >>= 1 {
		if k&1 == 1 {
			result = result.Multiplied(base)
		}
		if k > 1 {
			base = base.Multiplied(base)
		}
	}
	return result, nil
}

// Power replaces m with m^n. On error m is left unchanged.
func (m *Matrix2d) Power(n int) error {
	p, err := m.Powered(n)
	if err != nil {
		return err
	}
	*m = p
	return nil
}

// ElementPowi raises every element to the integer power n.
func (m Matrix2d) ElementPowi(n int) Matrix2d {
	return m.apply(func(v float64) float64 { return powi(v, n) })
}

// ElementPowf raises every element to the real power x.
func (m Matrix2d) ElementPowf(x float64) Matrix2d {
	return m.apply(func(v float64) float64 { return math.Pow(v, x) })
}

func (m Matrix2d) apply(f func(float64) float64) Matrix2d {
	for r := range m.M {
		for c := range m.M[r] {
			m.M[r][c] = f(m.M[r][c])
		}
	}
	return m
}

// Transposed swaps the off-diagonal elements.
func (m Matrix2d) Transposed() Matrix2d {
	m.M[0][1], m.M[1][0] = m.M[1][0], m.M[0][1]
	return m
}

func (m Matrix2d) Add(o Matrix2d) Matrix2d {
	return NewMatrix2d(m.M[0][0]+o.M[0][0], m.M[0][1]+o.M[0][1], m.M[1][0]+o.M[1][0], m.M[1][1]+o.M[1][1])
}

func (m Matrix2d) Sub(o Matrix2d) Matrix2d {
	return NewMatrix2d(m.M[0][0]-o.M[0][0], m.M[0][1]-o.M[0][1], m.M[1][0]-o.M[1][0], m.M[1][1]-o.M[1][1])
}

// AddScalar adds s to every element.
func (m Matrix2d) AddScalar(s float64) Matrix2d {
	return m.apply(func(v float64) float64 { return v + s })
}

func (m Matrix2d) Scaled(s float64) Matrix2d {
	return m.apply(func(v float64) float64 { return v * s })
}

func (m Matrix2d) Divided(s float64) Matrix2d {
	return m.apply(func(v float64) float64 { return v / s })
}

func (m Matrix2d) Neg() Matrix2d {
	return m.Scaled(-1)
}

// IsEqual reports whether every element differs by at most tol.
func (m Matrix2d) IsEqual(o Matrix2d, tol float64) bool {
	for r := range m.M {
		for c := range m.M[r] {
			if math.Abs(m.M[r][c]-o.M[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

// powi computes v^n by repeated squaring so that small integer powers stay
// exact.
func powi(v float64, n int) float64 {
	result := 1.0
	for k := magnitude(n); k > 0; k >>= 1 {
		if k&1 == 1 {
			result *= v
		}
		v *= v
	}
	if n < 0 {
		return 1 / result
	}
	return result
}

// magnitude returns |n| without overflowing at math.MinInt.
func magnitude(n int) uint {
	if n < 0 {
		return uint(-(n + 1)) + 1
	}
	return uint(n)
}

package geom

import (
	"fmt"
	"math"
)

// Matrix3d is a 3x3 matrix stored row-major: M[row][col].
type Matrix3d struct {
	M [3][3]float64
}

// NewMatrix3d returns the matrix with the given rows.
func NewMatrix3d(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix3d {
	return Matrix3d{M: [3][3]float64{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}}
}

func Matrix3dFromArray(m [3][3]float64) Matrix3d {
	return Matrix3d{M: m}
}

// Matrix3dFromColumns builds the matrix whose columns are c1, c2 and c3.
func Matrix3dFromColumns(c1, c2, c3 XYZ) Matrix3d {
	return NewMatrix3d(
		c1.X, c2.X, c3.X,
		c1.Y, c2.Y, c3.Y,
		c1.Z, c2.Z, c3.Z,
	)
}

func Identity3d() Matrix3d {
	return NewMatrix3d(1, 0, 0, 0, 1, 0, 0, 0, 1)
}

func (m Matrix3d) String() string {
	return fmt.Sprintf("Matrix3d([%g, %g, %g], [%g, %g, %g], [%g, %g, %g])",
		m.M[0][0], m.M[0][1], m.M[0][2],
		m.M[1][0], m.M[1][1], m.M[1][2],
		m.M[2][0], m.M[2][1], m.M[2][2])
}

func (m Matrix3d) At(row, col int) float64 { return m.M[row][col] }

func (m *Matrix3d) Set(row, col int, v float64) { m.M[row][col] = v }

func (m Matrix3d) Row(i int) XYZ {
	return XYZ{m.M[i][0], m.M[i][1], m.M[i][2]}
}

func (m Matrix3d) Col(i int) XYZ {
	return XYZ{m.M[0][i], m.M[1][i], m.M[2][i]}
}

func (m *Matrix3d) SetRow(i int, r XYZ) {
	m.M[i] = [3]float64{r.X, r.Y, r.Z}
}

func (m *Matrix3d) SetCol(i int, c XYZ) {
	m.M[0][i], m.M[1][i], m.M[2][i] = c.X, c.Y, c.Z
}

func (m Matrix3d) Diagonal() XYZ {
	return XYZ{m.M[0][0], m.M[1][1], m.M[2][2]}
}

func (m *Matrix3d) SetDiagonal(d XYZ) {
	m.M[0][0], m.M[1][1], m.M[2][2] = d.X, d.Y, d.Z
}

// Values returns the nine elements row by row.
func (m Matrix3d) Values() [9]float64 {
	return [9]float64{
		m.M[0][0], m.M[0][1], m.M[0][2],
		m.M[1][0], m.M[1][1], m.M[1][2],
		m.M[2][0], m.M[2][1], m.M[2][2],
	}
}

// SetValues overwrites m from nine row-major elements.
func (m *Matrix3d) SetValues(v [9]float64) {
	for i := range v {
		m.M[i/3][i%3] = v[i]
	}
}

func (m *Matrix3d) SetIdentity() { *m = Identity3d() }

// SetScale overwrites m with s·I.
func (m *Matrix3d) SetScale(s float64) {
	*m = NewMatrix3d(s, 0, 0, 0, s, 0, 0, 0, s)
}

// SetRotation overwrites m with the rotation of angle radians about axis,
// following the right-hand rule (Rodrigues' formula).
func (m *Matrix3d) SetRotation(axis Direction3d, angle float64) {
	a := axis.XYZ()
	sin, cos := math.Sincos(angle)
	t := 1 - cos
	*m = NewMatrix3d(
		cos+t*a.X*a.X, t*a.X*a.Y-sin*a.Z, t*a.X*a.Z+sin*a.Y,
		t*a.X*a.Y+sin*a.Z, cos+t*a.Y*a.Y, t*a.Y*a.Z-sin*a.X,
		t*a.X*a.Z-sin*a.Y, t*a.Y*a.Z+sin*a.X, cos+t*a.Z*a.Z,
	)
}

func (m Matrix3d) Determinant() float64 {
	return m.M[0][0]*(m.M[1][1]*m.M[2][2]-m.M[1][2]*m.M[2][1]) -
		m.M[0][1]*(m.M[1][0]*m.M[2][2]-m.M[1][2]*m.M[2][0]) +
		m.M[0][2]*(m.M[1][0]*m.M[2][1]-m.M[1][1]*m.M[2][0])
}

func (m Matrix3d) IsSingular() bool {
	return math.Abs(m.Determinant()) < MinPositive
}

// Inverted returns the inverse via the adjugate, or ErrSingularMatrix.
func (m Matrix3d) Inverted() (Matrix3d, error) {
	det := m.Determinant()
	if math.Abs(det) < MinPositive {
		return m, ErrSingularMatrix
	}
	a := m.M
	adj := NewMatrix3d(
		a[1][1]*a[2][2]-a[1][2]*a[2][1], a[0][2]*a[2][1]-a[0][1]*a[2][2], a[0][1]*a[1][2]-a[0][2]*a[1][1],
		a[1][2]*a[2][0]-a[1][0]*a[2][2], a[0][0]*a[2][2]-a[0][2]*a[2][0], a[0][2]*a[1][0]-a[0][0]*a[1][2],
		a[1][0]*a[2][1]-a[1][1]*a[2][0], a[0][1]*a[2][0]-a[0][0]*a[2][1], a[0][0]*a[1][1]-a[0][1]*a[1][0],
	)
	return adj.Scaled(1 / det), nil
}

// Multiplied returns m · o.
func (m Matrix3d) Multiplied(o Matrix3d) Matrix3d {
	var r Matrix3d
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][0]*o.M[0][j] + m.M[i][1]*o.M[1][j] + m.M[i][2]*o.M[2][j]
		}
	}
	return r
}

func (m Matrix3d) Transposed() Matrix3d {
	var r Matrix3d
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

func (m Matrix3d) Scaled(s float64) Matrix3d {
	for i := range m.M {
		for j := range m.M[i] {
			m.M[i][j] *= s
		}
	}
	return m
}

func (m Matrix3d) IsEqual(o Matrix3d, tol float64) bool {
	for i := range m.M {
		for j := range m.M[i] {
			if math.Abs(m.M[i][j]-o.M[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

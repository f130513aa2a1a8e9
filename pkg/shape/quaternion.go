package shape

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// Quaternions
// ---------------------------------------------------------------------------

// Quaternion is X·i + Y·j + Z·k + W.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion is the rotation by zero.
var IdentityQuaternion = Quaternion{W: 1}

func (q Quaternion) String() string {
	return fmt.Sprintf("Quaternion(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q Quaternion) Validate() error {
	if q.Norm() == 0 {
		return invalid("quaternion is null")
	}
	return nil
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Normalized returns q / |q|, or an error for the null quaternion.
func (q Quaternion) Normalized() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return q, invalid("cannot normalize a null quaternion")
	}
	return Quaternion{q.X / n, q.Y / n, q.Z / n, q.W / n}, nil
}

// QuaternionNlerp describes normalized linear interpolation between two
// rotations.
type QuaternionNlerp struct {
	Start Quaternion
	End   Quaternion
}

func (n QuaternionNlerp) String() string {
	return fmt.Sprintf("QuaternionNlerp(%v, %v)", n.Start, n.End)
}

func (n QuaternionNlerp) Validate() error {
	if err := n.Start.Validate(); err != nil {
		return err
	}
	return n.End.Validate()
}

// QuaternionSlerp describes spherical interpolation; Omega is the angle
// between Start and End.
type QuaternionSlerp struct {
	Start Quaternion
	End   Quaternion
	Omega float64
}

func (s QuaternionSlerp) String() string {
	return fmt.Sprintf("QuaternionSlerp(%v, %v, omega: %g)", s.Start, s.End, s.Omega)
}

func (s QuaternionSlerp) Validate() error {
	if err := s.Start.Validate(); err != nil {
		return err
	}
	return s.End.Validate()
}

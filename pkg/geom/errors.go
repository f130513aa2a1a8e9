package geom

import "errors"

var (
	// ErrSingularMatrix is returned when inverting a matrix whose determinant
	// is below MinPositive in magnitude.
	ErrSingularMatrix = errors.New("geom: matrix is singular")

	// ErrZeroVector is returned when an operation needs a direction from a
	// vector whose length is below MinPositive.
	ErrZeroVector = errors.New("geom: vector has zero length")

	// ErrNullScale is returned when a transform would use a zero scale factor.
	ErrNullScale = errors.New("geom: scale factor is zero")

	// ErrParallel is returned when two directions are parallel but the
	// operation needs them to span a plane.
	ErrParallel = errors.New("geom: directions are parallel")
)

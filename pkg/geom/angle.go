package geom

import "math"

// cos45 bounds the cosine range in which acos is well conditioned.
const cos45 = 0.70710678118655

// signedAngle returns the angle in (-π, π] whose cosine and sine are cos and
// sin. Outside ±45° of the perpendicular, acos loses precision, so the angle
// is recovered from asin and the quadrant is picked from the signs.
func signedAngle(cos, sin float64) float64 {
	if cos > -cos45 && cos < cos45 {
		if sin > 0 {
			return math.Acos(cos)
		}
		return -math.Acos(cos)
	}
	if cos > 0 {
		return math.Asin(sin)
	}
	if sin >= 0 {
		return math.Pi - math.Asin(sin)
	}
	return -math.Pi - math.Asin(sin)
}

// unsignedAngle is signedAngle for a non-negative sine, giving [0, π].
func unsignedAngle(cos, sin float64) float64 {
	if cos > -cos45 && cos < cos45 {
		return math.Acos(cos)
	}
	if cos > 0 {
		return math.Asin(sin)
	}
	return math.Pi - math.Asin(sin)
}

func isOrthogonalAngle(ang, tol float64) bool {
	return math.Abs(math.Pi/2-math.Abs(ang)) <= tol
}

func isOppositeAngle(ang, tol float64) bool {
	return math.Pi-math.Abs(ang) <= tol
}

func isParallelAngle(ang, tol float64) bool {
	a := math.Abs(ang)
	return a <= tol || math.Pi-a <= tol
}

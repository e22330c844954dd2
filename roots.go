package newton

import (
	"math"
	"math/cmplx"
)

// Ring returns n roots evenly spaced on a circle of the given radius,
// starting at angle phase. Ring(n, 1, 0) are the roots of z^n - 1.
func Ring(n int, radius, phase float64) []complex128 {
	if n <= 0 {
		return nil
	}
	roots := make([]complex128, n)
	for i := range roots {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		roots[i] = cmplx.Rect(radius, a)
	}
	return roots
}

// Spiral returns n roots at evenly spaced angles whose distance from the
// origin grows linearly from 0 to radius.
func Spiral(n int, radius, phase float64) []complex128 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []complex128{0}
	}
	roots := make([]complex128, n)
	for i := range roots {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		roots[i] = cmplx.Rect(radius*float64(i)/float64(n-1), a)
	}
	return roots
}

// Rotate returns a copy of roots rotated about the origin by angle radians.
func Rotate(roots []complex128, angle float64) []complex128 {
	w := cmplx.Rect(1, angle)
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = r * w
	}
	return out
}

// Scaled returns a copy of roots multiplied by s.
func Scaled(roots []complex128, s float64) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = r * complex(s, 0)
	}
	return out
}

package filter

import "math"

// Gradient returns the unit-length gradient of f as two component fields.
//
// Interior pixels use centred differences, border pixels one-sided
// differences. A dimension of size 1 contributes 0. Pixels whose raw
// gradient is exactly zero keep the zero vector.
func Gradient(f *Field, workers int) (gx, gy *Field) {
	w, h := f.W, f.H
	gx, gy = NewField(w, h), NewField(w, h)

	Bands(h, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := range w {
				dx := diff(w, x, func(i int) float64 { return f.At(i, y) })
				dy := diff(h, y, func(i int) float64 { return f.At(x, i) })

				m := math.Hypot(dx, dy)
				if m == 0 {
					continue
				}
				gx.Set(x, y, dx/m)
				gy.Set(x, y, dy/m)
			}
		}
	})

	return gx, gy
}

// diff is the finite difference at i along a line of n samples.
func diff(n, i int, at func(int) float64) float64 {
	switch {
	case n < 2:
		return 0
	case i == 0:
		return at(1) - at(0)
	case i == n-1:
		return at(n-1) - at(n-2)
	default:
		return (at(i+1) - at(i-1)) / 2
	}
}

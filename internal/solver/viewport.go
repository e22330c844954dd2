package solver

import "github.com/gogpu/newton/internal/wide"

// Viewport maps pixel coordinates to starting points in the complex plane.
//
// The offset of a pixel from the grid centre is divided by the larger grid
// dimension and multiplied by 2*Scale: along the larger dimension the view
// spans [Center-Scale, Center+Scale). The imaginary part grows with the
// row index.
type Viewport struct {
	Cols, Rows int
	Center     complex128
	Scale      float64
}

func (v Viewport) unit() float64 {
	return 2 * v.Scale / float64(max(v.Cols, v.Rows))
}

// Point returns the starting point for pixel (x, y).
func (v Viewport) Point(x, y int) complex128 {
	u := v.unit()
	re := (float64(x) - float64(v.Cols)/2) * u
	im := (float64(y) - float64(v.Rows)/2) * u
	return v.Center + complex(re, im)
}

// Point8 returns the starting points for pixels x..x+7 of row y.
func (v Viewport) Point8(x, y int) wide.Complex8 {
	var c [wide.Lanes]complex128
	for i := range c {
		c[i] = v.Point(x+i, y)
	}
	return wide.Pack(c)
}

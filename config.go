package newton

import (
	"fmt"
	"math"
	"math/cmplx"
)

// MaxRoots is the largest supported root count. Root indices and the
// background index share a 16-bit cell.
const MaxRoots = math.MaxUint16 - 1

// Config describes one render.
type Config struct {
	// Cols and Rows are the output size in pixels.
	Cols, Rows int

	// Center is the complex value at the middle of the image.
	Center complex128

	// Scale is the half-extent of the view along the larger dimension.
	Scale float64

	// Roots are the target roots. The polynomial is their product form
	// and each root's position in the slice is its basin index.
	Roots []complex128

	// MaxIter caps the Newton steps per pixel.
	MaxIter int

	// Damping multiplies every Newton step. 1 is the classical method.
	Damping float64

	// Epsilon is compared against the squared distance to a root.
	Epsilon float64

	// Stride is the number of steps between convergence checks.
	Stride int

	// Workers is the pool size. Zero means GOMAXPROCS.
	Workers int

	// RowsPerTask is the number of rows per scheduled task.
	RowsPerTask int

	// BlurRadius smooths the shading gradient. Zero disables blurring.
	BlurRadius int

	// Light points from the surface to the light source in image space
	// (x right, y down, z towards the viewer).
	Light [3]float64

	// Vectorized selects the 8-lane iteration path.
	Vectorized bool

	// Shading selects the relief-shaded output. When false the image is
	// flat basin colours with black boundaries.
	Shading bool
}

// DefaultConfig returns an 800x800 render of z^3 - 1.
func DefaultConfig() Config {
	return Config{
		Cols:        800,
		Rows:        800,
		Scale:       1.5,
		Roots:       Ring(3, 1, 0),
		MaxIter:     1000,
		Damping:     1,
		Epsilon:     0.02,
		Stride:      8,
		RowsPerTask: 4,
		BlurRadius:  4,
		Light:       [3]float64{-1, -1, 1},
		Vectorized:  true,
		Shading:     true,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Cols, c.Rows)
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.Scale)
	}
	if len(c.Roots) == 0 {
		return ErrNoRoots
	}
	if len(c.Roots) > MaxRoots {
		return fmt.Errorf("%w: %d > %d", ErrTooManyRoots, len(c.Roots), MaxRoots)
	}
	for i, r := range c.Roots {
		if cmplx.IsNaN(r) || cmplx.IsInf(r) {
			return fmt.Errorf("%w: root %d is %v", ErrInvalidRoot, i, r)
		}
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.MaxIter)
	}
	if c.Damping == 0 || math.IsNaN(c.Damping) || math.IsInf(c.Damping, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDamping, c.Damping)
	}
	if !(c.Epsilon > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidEpsilon, c.Epsilon)
	}
	if c.Stride <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStride, c.Stride)
	}
	if c.BlurRadius < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlurRadius, c.BlurRadius)
	}
	if c.Shading && c.Light == ([3]float64{}) {
		return ErrInvalidLight
	}
	return nil
}

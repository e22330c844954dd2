package newton

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing(t *testing.T) {
	roots := Ring(6, 2, math.Pi/6)
	assert.Len(t, roots, 6)
	for i, r := range roots {
		assert.InDelta(t, 2, cmplx.Abs(r), 1e-12)
		want := math.Pi/6 + float64(i)*math.Pi/3
		assert.InDelta(t, 0, cmplx.Abs(r-cmplx.Rect(2, want)), 1e-12)
	}
	assert.Nil(t, Ring(0, 1, 0))
}

func TestSpiral(t *testing.T) {
	roots := Spiral(5, 1, 0)
	assert.Len(t, roots, 5)
	assert.Equal(t, complex128(0), roots[0])
	assert.InDelta(t, 1, cmplx.Abs(roots[4]), 1e-12)
	for i := 1; i < len(roots); i++ {
		assert.Greater(t, cmplx.Abs(roots[i]), cmplx.Abs(roots[i-1]))
	}
	assert.Equal(t, []complex128{0}, Spiral(1, 3, 0))
	assert.Nil(t, Spiral(-1, 1, 0))
}

func TestRotate(t *testing.T) {
	in := []complex128{1, 2i}
	out := Rotate(in, math.Pi/2)
	assert.InDelta(t, 0, cmplx.Abs(out[0]-1i), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(out[1]+2), 1e-12)
	assert.Equal(t, complex128(1), in[0], "input must not be modified")
}

func TestScaled(t *testing.T) {
	assert.Equal(t, []complex128{2, 4i}, Scaled([]complex128{1, 2i}, 2))
}

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProximity_Monotonic(t *testing.T) {
	p := DefaultShape()

	assert.Equal(t, 0.0, p.Proximity(0))

	prev := 0.0
	for d := 0.25; d < 500; d *= 1.5 {
		v := p.Proximity(d)
		assert.Greater(t, v, prev, "d=%v", d)
		assert.Less(t, v, 1.0, "d=%v", d)
		prev = v
	}
}

func TestShape(t *testing.T) {
	f := fieldFrom(5, 4, func(x, y int) float64 { return float64(x + y) })
	p := ShapeParams{Gamma: 1, Gain: 1}

	out := Shape(f, p, 2)
	for i, v := range f.Data {
		assert.Equal(t, p.Proximity(v), out.Data[i])
	}
	assert.NotSame(t, f, out)
}

package filter

import "math"

// ShapeParams tune the proximity curve. They change the look, not the
// ordering: the curve is monotonic for any positive values.
type ShapeParams struct {
	// Gamma is the power applied to the raw distance.
	Gamma float64
	// Gain scales the logarithm before squashing.
	Gain float64
}

// DefaultShape returns the curve used by the renderer.
func DefaultShape() ShapeParams {
	return ShapeParams{Gamma: 0.75, Gain: 1.5}
}

// Proximity maps a distance d >= 0 to [0, 1): 0 on an edge, approaching 1
// far away. Large distances are compressed so detail near edges dominates.
func (p ShapeParams) Proximity(d float64) float64 {
	x := math.Log1p(math.Pow(d, p.Gamma)) * p.Gain
	return 2/(1+math.Exp(-x)) - 1
}

// Shape returns a new field with Proximity applied to every value of f.
func Shape(f *Field, p ShapeParams, workers int) *Field {
	out := NewField(f.W, f.H)
	Bands(f.H, workers, func(lo, hi int) {
		for i := lo * f.W; i < hi*f.W; i++ {
			out.Data[i] = p.Proximity(f.Data[i])
		}
	})
	return out
}

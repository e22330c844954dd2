package wide

// Lanes is the number of lanes in every wide type of this package.
const Lanes = 8

// F64x8 represents 8 float64 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F64x8 [Lanes]float64

// Mask8 holds the per-lane result of a comparison.
type Mask8 [Lanes]bool

// SplatF64 creates F64x8 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF64(n float64) F64x8 {
	var result F64x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v F64x8) Add(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F64x8) Sub(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F64x8) Mul(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
// Note: Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F64x8) Div(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Scale multiplies every element by s.
func (v F64x8) Scale(s float64) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] * s
	}
	return result
}

// Lt reports, per lane, whether v[i] < other[i].
// A NaN lane never compares less than anything.
func (v F64x8) Lt(other F64x8) Mask8 {
	var result Mask8
	for i := range v {
		result[i] = v[i] < other[i]
	}
	return result
}

// All reports whether every lane is set.
func (m Mask8) All() bool {
	for _, b := range m {
		if !b {
			return false
		}
	}
	return true
}

// Any reports whether at least one lane is set.
func (m Mask8) Any() bool {
	for _, b := range m {
		if b {
			return true
		}
	}
	return false
}

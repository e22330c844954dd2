package filter

import "math"

// Field is a dense row-major grid of float64 values.
type Field struct {
	W, H int
	Data []float64
}

// NewField allocates a zeroed w × h field.
func NewField(w, h int) *Field {
	return &Field{W: w, H: h, Data: make([]float64, w*h)}
}

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 {
	return f.Data[y*f.W+x]
}

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) {
	f.Data[y*f.W+x] = v
}

// Row returns row y as a slice aliasing the field.
func (f *Field) Row(y int) []float64 {
	return f.Data[y*f.W : (y+1)*f.W]
}

// Range returns the smallest and largest values of the field.
func (f *Field) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.Data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

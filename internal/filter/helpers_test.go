package filter

// uniformWithDot returns a cols × rows grid of zeros with a single 1 at (cx, cy).
func uniformWithDot(cols, rows, cx, cy int) []uint16 {
	cells := make([]uint16, cols*rows)
	cells[cy*cols+cx] = 1
	return cells
}

// fieldFrom builds a field by evaluating fn at every pixel.
func fieldFrom(w, h int, fn func(x, y int) float64) *Field {
	f := NewField(w, h)
	for y := range h {
		for x := range w {
			f.Set(x, y, fn(x, y))
		}
	}
	return f
}

package filter

// Edges marks every pixel with at least one in-bounds 8-neighbour holding a
// different root index. cells is row-major with the given dimensions.
func Edges(cells []uint16, cols, rows, workers int) []bool {
	edges := make([]bool, len(cells))

	Bands(rows, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := range cols {
				edges[y*cols+x] = isEdge(cells, cols, rows, x, y)
			}
		}
	})

	return edges
}

func isEdge(cells []uint16, cols, rows, x, y int) bool {
	c := cells[y*cols+x]
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= cols || (dx == 0 && dy == 0) {
				continue
			}
			if cells[ny*cols+nx] != c {
				return true
			}
		}
	}
	return false
}

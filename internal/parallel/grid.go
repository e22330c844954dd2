package parallel

import (
	"fmt"
	"sync"
)

// IndexGrid is the shared row-major grid of per-pixel root indices.
//
// During a fill, tasks write to it only through CommitRows, which holds
// the grid lock for the duration of the copy. After the fill returns the
// grid is read-only and the accessors need no locking.
type IndexGrid struct {
	rows, cols int

	mu    sync.Mutex
	cells []uint16
}

// NewIndexGrid allocates a rows × cols grid filled with zeros.
func NewIndexGrid(rows, cols int) *IndexGrid {
	return &IndexGrid{
		rows:  rows,
		cols:  cols,
		cells: make([]uint16, rows*cols),
	}
}

// CommitRows copies whole rows starting at row y0 into the grid.
// len(vals) must be a multiple of the row length.
func (g *IndexGrid) CommitRows(y0 int, vals []uint16) error {
	if g.cols == 0 || len(vals)%g.cols != 0 {
		return fmt.Errorf("parallel: commit of %d cells is not a whole number of %d-cell rows", len(vals), g.cols)
	}
	n := len(vals) / g.cols
	if y0 < 0 || y0+n > g.rows {
		return fmt.Errorf("parallel: rows [%d, %d) outside grid of %d rows", y0, y0+n, g.rows)
	}

	g.mu.Lock()
	copy(g.cells[y0*g.cols:], vals)
	g.mu.Unlock()
	return nil
}

// Rows returns the number of rows.
func (g *IndexGrid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *IndexGrid) Cols() int { return g.cols }

// Cells returns the backing row-major slice. Callers must not modify it
// and must not read it before the fill that populates it has returned.
func (g *IndexGrid) Cells() []uint16 { return g.cells }

// At returns the index of pixel (x, y).
func (g *IndexGrid) At(x, y int) uint16 {
	return g.cells[y*g.cols+x]
}

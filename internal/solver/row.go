package solver

import "github.com/gogpu/newton/internal/wide"

// RowComputer classifies whole rows of a viewport.
type RowComputer struct {
	solver     *Solver
	view       Viewport
	vectorized bool
}

// NewRowComputer binds a solver to a viewport. When vectorized is set,
// full 8-pixel chunks of a row go through the batched path and the
// remainder through the scalar path.
func NewRowComputer(s *Solver, v Viewport, vectorized bool) *RowComputer {
	return &RowComputer{solver: s, view: v, vectorized: vectorized}
}

// Row writes the root index of every pixel of row y into dst.
// dst must hold at least Cols entries.
func (rc *RowComputer) Row(y int, dst []uint16) {
	x := 0
	if rc.vectorized {
		for ; x+wide.Lanes <= rc.view.Cols; x += wide.Lanes {
			idx := rc.solver.Solve8(rc.view.Point8(x, y))
			for i, v := range idx {
				dst[x+i] = uint16(v)
			}
		}
	}

	for ; x < rc.view.Cols; x++ {
		dst[x] = uint16(rc.solver.Solve(rc.view.Point(x, y)))
	}
}

// Cols returns the row length.
func (rc *RowComputer) Cols() int {
	return rc.view.Cols
}

package parallel

import (
	"fmt"
	"sync/atomic"
	"time"
)

// RowFunc computes the root indices of row y into dst (len(dst) == cols).
type RowFunc func(y int, dst []uint16) error

// ProgressFunc receives the number of committed rows and the total.
// It is called from worker goroutines and must be safe for concurrent use.
type ProgressFunc func(done, total int)

// Scheduler fans row blocks of an IndexGrid out over a Pool.
type Scheduler struct {
	pool        *Pool
	rowsPerTask int
	progress    atomic.Pointer[ProgressFunc]
}

// NewScheduler creates a scheduler that submits rowsPerTask rows per task.
// Values below 1 mean one row per task.
func NewScheduler(pool *Pool, rowsPerTask int) *Scheduler {
	return &Scheduler{pool: pool, rowsPerTask: max(rowsPerTask, 1)}
}

// OnProgress registers a progress callback. Pass nil to remove it.
// It may be called while a Fill is running.
func (s *Scheduler) OnProgress(fn ProgressFunc) {
	if fn == nil {
		s.progress.Store(nil)
		return
	}
	s.progress.Store(&fn)
}

// Fill computes every row of g with row and blocks until all rows have
// been committed. The first task error aborts the fill and is returned;
// g must then be discarded.
func (s *Scheduler) Fill(g *IndexGrid, row RowFunc) error {
	rows, cols := g.Rows(), g.Cols()
	start := time.Now()

	var committed atomic.Int64
	tasks := make([]Task, 0, (rows+s.rowsPerTask-1)/s.rowsPerTask)
	for y0 := 0; y0 < rows; y0 += s.rowsPerTask {
		n := min(s.rowsPerTask, rows-y0)
		tasks = append(tasks, func() error {
			buf := make([]uint16, n*cols)
			for dy := range n {
				if err := row(y0+dy, buf[dy*cols:(dy+1)*cols]); err != nil {
					return fmt.Errorf("row %d: %w", y0+dy, err)
				}
			}
			if err := g.CommitRows(y0, buf); err != nil {
				return err
			}
			done := committed.Add(int64(n))
			if fn := s.progress.Load(); fn != nil {
				(*fn)(int(done), rows)
			}
			return nil
		})
	}

	slogger().Debug("parallel: fill started",
		"rows", rows, "cols", cols, "tasks", len(tasks), "workers", s.pool.Workers())

	if err := s.pool.Run(tasks); err != nil {
		slogger().Warn("parallel: fill aborted", "err", err, "committed", committed.Load())
		return err
	}

	slogger().Debug("parallel: fill complete", "elapsed", time.Since(start))
	return nil
}

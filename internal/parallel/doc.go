// Package parallel schedules root-index computation over a pixel grid.
//
// The grid is split into blocks of whole rows. Each block is an
// independent task run on a fixed-size worker pool: the task computes its
// rows into a private buffer and then commits them to the shared IndexGrid
// while holding the grid's lock. Only the copy happens under the lock, and
// rows never overlap, so the final grid does not depend on the order in
// which tasks complete.
//
// Scheduler.Fill is the render barrier: it returns only after every row
// block has committed, or after the first task failure.
package parallel

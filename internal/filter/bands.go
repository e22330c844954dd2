package filter

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Bands splits [0, n) into at most workers contiguous bands and runs fn on
// each band concurrently, returning when all bands are done. fn must only
// write to the band it is given. workers <= 0 means GOMAXPROCS.
func Bands(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	size := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // band functions cannot fail
}

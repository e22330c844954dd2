package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned by Run after Close.
var ErrPoolClosed = errors.New("parallel: pool is closed")

// Task is a unit of work. A non-nil error is fatal to the whole Run.
type Task func() error

// Pool is a fixed-size pool of goroutines.
//
// The pool distributes tasks across workers, each with their own queue.
// Workers steal from other queues when their own queue is empty, which
// balances load when some rows take longer to converge than others.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker work queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// submit is held for reading while Run enqueues and for writing by
	// Close, so no work is enqueued after the workers begin to exit.
	submit sync.RWMutex
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// 2-4x workers of buffering hides submission latency.
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return

		case work := <-own:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing anywhere, block on own queue.
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

// drain executes all remaining work in a queue.
func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *Pool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// Run distributes tasks round-robin and blocks until every task has
// finished or been skipped.
//
// The first failing task (returned error or panic) is fatal: tasks that
// have not started yet are skipped and Run returns that failure.
func (p *Pool) Run(tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	p.submit.RLock()
	if !p.running.Load() {
		p.submit.RUnlock()
		return ErrPoolClosed
	}

	var (
		wg       sync.WaitGroup
		failed   atomic.Bool
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() { firstErr = err })
		failed.Store(true)
	}

	wg.Add(len(tasks))
	for i, task := range tasks {
		work := func() {
			defer wg.Done()
			if failed.Load() {
				return
			}
			if err := protect(task); err != nil {
				fail(err)
			}
		}

		p.queues[i%p.workers] <- work
	}
	p.submit.RUnlock()

	wg.Wait()
	return firstErr
}

// protect runs t and converts a panic into an error.
func protect(t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parallel: task panicked: %v", r)
		}
	}()
	return t()
}

// Close stops the pool after queued work has run.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.submit.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.submit.Unlock()
		return
	}
	close(p.done)
	p.submit.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

package newton

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/newton/internal/filter"
	"github.com/gogpu/newton/internal/parallel"
	"github.com/gogpu/newton/internal/post"
	"github.com/gogpu/newton/internal/solver"
	"github.com/gogpu/newton/poly"
)

// ErrClosed is returned by Render and Indices after Close.
var ErrClosed = errors.New("newton: renderer is closed")

// IndexGrid holds one root index per pixel in row-major order. Index
// len(Config.Roots) marks pixels whose orbit reached no root.
type IndexGrid = parallel.IndexGrid

// Renderer computes Newton fractal images for a fixed Config.
//
// A Renderer owns a worker pool; call Close when done. Render and Indices
// may be called repeatedly and from multiple goroutines, but calls are
// serialized.
type Renderer struct {
	mu     sync.Mutex
	closed bool

	cfg   Config
	f     poly.Polynomial
	rows  *solver.RowComputer
	pool  *parallel.Pool
	sched *parallel.Scheduler
	post  post.Params
}

// NewRenderer validates cfg, builds the polynomial from its roots and
// starts the worker pool.
func NewRenderer(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg.Roots = append([]complex128(nil), cfg.Roots...)
	f := poly.FromRoots(cfg.Roots)

	s := solver.New(f, cfg.Roots, solver.Params{
		MaxIter: cfg.MaxIter,
		Damping: cfg.Damping,
		Epsilon: cfg.Epsilon,
		Stride:  cfg.Stride,
	})
	view := solver.Viewport{
		Cols:   cfg.Cols,
		Rows:   cfg.Rows,
		Center: cfg.Center,
		Scale:  cfg.Scale,
	}

	pool := parallel.NewPool(cfg.Workers)
	sched := parallel.NewScheduler(pool, cfg.RowsPerTask)
	if o.progress != nil {
		sched.OnProgress(parallel.ProgressFunc(o.progress))
	}

	pp := post.DefaultParams()
	pp.BlurRadius = cfg.BlurRadius
	pp.Light = mgl64.Vec3(cfg.Light)
	pp.Workers = pool.Workers()
	if sp := o.shading; sp != nil {
		pp.Relief = sp.Relief
		pp.Ambient = sp.Ambient
		pp.Diffuse = sp.Diffuse
		pp.Shape = filter.ShapeParams{Gamma: sp.Gamma, Gain: sp.Gain}
	}

	Logger().Debug("newton: renderer created",
		"size", fmt.Sprintf("%dx%d", cfg.Cols, cfg.Rows),
		"roots", len(cfg.Roots), "workers", pool.Workers(), "poly", f)

	return &Renderer{
		cfg:   cfg,
		f:     f,
		rows:  solver.NewRowComputer(s, view, cfg.Vectorized),
		pool:  pool,
		sched: sched,
		post:  pp,
	}, nil
}

// Config returns the configuration the renderer was created with.
func (r *Renderer) Config() Config {
	cfg := r.cfg
	cfg.Roots = append([]complex128(nil), r.cfg.Roots...)
	return cfg
}

// Polynomial returns the polynomial whose roots are Config.Roots.
func (r *Renderer) Polynomial() poly.Polynomial {
	return r.f
}

// Indices runs the Newton iteration for every pixel and returns the
// root-index grid. It returns only after every row has been committed.
func (r *Renderer) Indices() (*IndexGrid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indices()
}

func (r *Renderer) indices() (*IndexGrid, error) {
	if r.closed {
		return nil, ErrClosed
	}

	start := time.Now()
	g := parallel.NewIndexGrid(r.cfg.Rows, r.cfg.Cols)
	err := r.sched.Fill(g, func(y int, dst []uint16) error {
		r.rows.Row(y, dst)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("newton: iterate: %w", err)
	}
	Logger().Debug("newton: iteration complete", "elapsed", time.Since(start))
	return g, nil
}

// Render computes the index grid and colours it.
func (r *Renderer) Render() (*Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	Logger().Info("newton: render started",
		"cols", r.cfg.Cols, "rows", r.cfg.Rows, "roots", len(r.cfg.Roots))

	g, err := r.indices()
	if err != nil {
		Logger().Warn("newton: render aborted", "err", err)
		return nil, err
	}

	img := r.Colorize(g)

	Logger().Info("newton: render complete", "elapsed", time.Since(start))
	return img, nil
}

// Colorize turns an index grid produced by this renderer into an image.
func (r *Renderer) Colorize(g *IndexGrid) *Image {
	start := time.Now()
	img := NewImage(g.Cols(), g.Rows())
	n := len(r.cfg.Roots)
	if r.cfg.Shading {
		post.Process(g, n, r.post, img.Pix)
	} else {
		post.Flat(g, n, r.post.Workers, img.Pix)
	}
	Logger().Debug("newton: post-processing complete",
		"shading", r.cfg.Shading, "elapsed", time.Since(start))
	return img
}

// Close stops the worker pool. It is safe to call more than once.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.pool.Close()
}

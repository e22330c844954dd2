package solver

import (
	"github.com/gogpu/newton/internal/wide"
	"github.com/gogpu/newton/poly"
)

// Params are the iteration constants shared by every orbit of a render.
type Params struct {
	// MaxIter caps the number of Newton steps per orbit.
	MaxIter int

	// Damping multiplies each Newton step (1 is the classical method).
	Damping float64

	// Epsilon is the convergence radius, compared against the squared
	// distance |z - root|².
	Epsilon float64

	// Stride is the spacing of convergence checks. A check runs after
	// steps 0, Stride, 2*Stride, ...
	Stride int
}

// State is the state of an orbit.
type State uint8

const (
	// Iterating means the orbit has not terminated.
	Iterating State = iota
	// Converged means a stride check found the iterate near a root.
	Converged
	// Exhausted means the iteration cap was reached without a stride hit.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result describes a terminated orbit.
type Result struct {
	// Z is the last computed iterate.
	Z complex128
	// State is Converged or Exhausted.
	State State
	// Root is the root index hit by the stride check, or the sentinel when
	// the orbit is Exhausted.
	Root int
	// Steps is the number of Newton steps taken.
	Steps int
}

// Solver iterates one polynomial towards a fixed, ordered root set.
// A Solver is read-only after New and safe for concurrent use.
type Solver struct {
	f, df  poly.Polynomial
	roots  []complex128
	params Params
	eps8   wide.F64x8
}

// New creates a Solver for f, deriving f′ once.
// Root i of roots is colour index i; len(roots) is the background index.
func New(f poly.Polynomial, roots []complex128, p Params) *Solver {
	if p.Stride <= 0 {
		p.Stride = 1
	}
	return &Solver{
		f:      f,
		df:     f.Derivative(),
		roots:  append([]complex128(nil), roots...),
		params: p,
		eps8:   wide.SplatF64(p.Epsilon),
	}
}

// Background returns the sentinel index assigned to orbits that reach no root.
func (s *Solver) Background() int {
	return len(s.roots)
}

// Params returns the iteration constants.
func (s *Solver) Params() Params {
	return s.params
}

// step performs one damped Newton update.
func (s *Solver) step(z complex128) complex128 {
	q := wide.DivComplex(s.f.Eval(z), s.df.Eval(z))
	return z - wide.ScaleComplex(q, s.params.Damping)
}

// near returns the index of the first root within Epsilon of z, or -1.
func (s *Solver) near(z complex128) int {
	for i, r := range s.roots {
		if wide.Norm(z-r) < s.params.Epsilon {
			return i
		}
	}
	return -1
}

// Iterate runs the orbit starting at z until a stride check succeeds or the
// iteration cap is reached.
func (s *Solver) Iterate(z complex128) Result {
	for n := range s.params.MaxIter {
		z = s.step(z)
		if n%s.params.Stride == 0 {
			if i := s.near(z); i >= 0 {
				return Result{Z: z, State: Converged, Root: i, Steps: n + 1}
			}
		}
	}
	return Result{Z: z, State: Exhausted, Root: s.Background(), Steps: s.params.MaxIter}
}

// Classify scans every root against z and returns the last root within
// Epsilon, or the background index. Non-finite z never matches.
func (s *Solver) Classify(z complex128) int {
	idx := s.Background()
	for i, r := range s.roots {
		if wide.Norm(z-r) < s.params.Epsilon {
			idx = i
		}
	}
	return idx
}

// Solve iterates from z and classifies the last iterate.
func (s *Solver) Solve(z complex128) int {
	return s.Classify(s.Iterate(z).Z)
}

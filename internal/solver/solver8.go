package solver

import "github.com/gogpu/newton/internal/wide"

// step8 performs one damped Newton update on all lanes.
func (s *Solver) step8(z wide.Complex8) wide.Complex8 {
	q := s.f.Eval8(z).Div(s.df.Eval8(z))
	return z.Sub(q.Scale(s.params.Damping))
}

// allNear reports whether every lane is within Epsilon of the same root.
func (s *Solver) allNear(z wide.Complex8) bool {
	for _, r := range s.roots {
		if z.SubScalar(r).Norm().Lt(s.eps8).All() {
			return true
		}
	}
	return false
}

// Iterate8 advances 8 orbits in lockstep. It stops early only when all
// lanes sit within Epsilon of one and the same root at a stride check;
// lanes that converged earlier keep iterating with the rest.
// The returned State is Converged on early exit and Exhausted otherwise.
func (s *Solver) Iterate8(z wide.Complex8) (wide.Complex8, State) {
	for n := range s.params.MaxIter {
		z = s.step8(z)
		if n%s.params.Stride == 0 && s.allNear(z) {
			return z, Converged
		}
	}
	return z, Exhausted
}

// Solve8 iterates 8 orbits and classifies every lane independently.
func (s *Solver) Solve8(z wide.Complex8) [wide.Lanes]int {
	z, _ = s.Iterate8(z)

	var out [wide.Lanes]int
	for i := range out {
		out[i] = s.Classify(z.Lane(i))
	}
	return out
}

// Package solver runs the damped Newton-Raphson iteration that classifies
// each pixel of a Newton fractal by the root its orbit reaches.
//
// Each orbit is a small state machine: it starts Iterating and ends either
// Converged (an iterate came within the convergence radius of a root at a
// stride check) or Exhausted (the iteration cap was reached). Whatever the
// terminal state, the definitive root index always comes from a full scan
// of all roots against the last iterate (Classify); the stride check is only
// an early exit.
package solver

// Package poly implements dense complex polynomials for Newton iteration.
//
// A Polynomial stores its coefficients in ascending order of power:
// coefficient 0 is the constant term. Polynomials are values; every
// operation returns a new Polynomial and never mutates its operands.
//
// Evaluation has a scalar form (Eval) and an 8-lane form (Eval8) that
// perform the same operations in the same order, so a render computed on
// the batched path agrees with the scalar path to floating-point precision.
package poly

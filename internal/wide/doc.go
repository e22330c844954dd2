// Package wide provides SIMD-friendly wide types for batched Newton iteration.
//
// The types here are designed to enable Go compiler auto-vectorization. By
// using fixed-size arrays and simple loops, lane-wise arithmetic compiles to
// straight-line code that the compiler can map onto vector units (SSE, AVX,
// NEON) where available.
//
// # Wide Types
//
// F64x8: 8 float64 values for floating-point lane arithmetic.
// Mask8: 8 lane predicates produced by comparisons.
// Complex8: 8 complex128 values stored as two parallel F64x8 lanes
// (Structure-of-Arrays layout: real parts in Re, imaginary parts in Im).
//
// # Lane Order
//
// Lane i of Re and lane i of Im together form one logical complex value.
// Pack and Unpack convert to and from [8]complex128 without reordering.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Scalar helpers share the lane formulas so scalar and batched paths agree
//
// # Usage Example
//
//	z := wide.Pack(points)
//	z = z.Sub(f.Div(df).Scale(damping))
//	out := z.Unpack()
package wide

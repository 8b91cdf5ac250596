// Package lvlalg is a small, generic dense linear-algebra engine for Go.
//
// What is lvlalg?
//
//	A pure-Go library that brings together:
//		• Element types: any integer or float kind, or exact big.Rat rationals
//		• Dense matrices: arithmetic, multiplication, transpose, minors
//		• Elimination: pivoted LU (P*L*U == A), row echelon form, rank
//		• Exact determinant (cofactor), Gauss-Jordan inverse, linear solve
//		• Step traces: watch every intermediate state of an elimination
//
// Under the hood, everything is organized under two subpackages:
//
//	numeric/ - the Field abstraction, Scalar and Rational element types, per-type constants
//	matrix/  - Dense[T], kernels, options, step recorders, gonum interop
//
// Quick start:
//
//	m, _ := matrix.New(2, 2, 4.0, 7.0, 2.0, 6.0)
//	inv, _ := matrix.Inverse(m)
//	lu, _ := matrix.LUDecomposition(m)
//	r, _ := matrix.Rank(m)
//
// Kernels never mutate their inputs and are safe to call concurrently on
// shared read-only matrices.
package lvlalg

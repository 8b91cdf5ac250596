// Package matrix is a generic dense linear-algebra engine.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over any element type that has a
//     numeric.Field (built-in integers and floats via numeric.Scalar,
//     arbitrary-precision rationals via numeric.Rational).
//   - Element-wise arithmetic, multiplication, transpose, minors and
//     equality (exact and tolerance-based).
//   - Row-pivoted LU decomposition (P*L*U == A), row echelon form and rank,
//     sharing one elimination core.
//   - Cofactor determinant, Gauss-Jordan inverse and linear solve.
//   - An optional per-call step trace (WithRecorder) exposing every
//     intermediate state of an elimination.
//   - Copy bridges to gonum (ToGonum/FromGonum) for float64 matrices.
//
// Kernels never mutate their inputs. Integer element types use truncating
// division, so LU and Inverse over integers are exact only when every pivot
// division is exact; use numeric.Rational when exactness matters.
//
// Logging goes through go-log under the subsystem "lvlalg/matrix"; kernels
// emit debug records only. WithLogger routes a single call elsewhere.
package matrix

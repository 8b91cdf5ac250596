// SPDX-License-Identifier: MIT

// Package numeric defines the element capability contract used by every
// lvlalg algorithm.
//
// A Field[T] bundles the operations an elimination kernel needs on values of
// type T: ring arithmetic, division that reports its own failures, a total
// order, absolute value, negation and saturating conversions. Algorithms in
// package matrix are written once against Field[T] and run unchanged over
// machine integers, IEEE floats and exact rationals.
//
// Provided fields:
//
//   - Scalar[T] for any built-in integer or float kind (constraints from
//     golang.org/x/exp/constraints), including named types such as
//     `type Celsius float64`.
//   - Rational for *big.Rat, an exact custom number type.
//
// Custom number types plug in by implementing Field[T] for their value type.
//
// Constant table:
//
//	ConstantsOf(f) returns the per-type {Epsilon, Pi, E} triple. The table is
//	filled once per element type on first use and is read-only afterwards, so
//	concurrent readers need no locking beyond the sync.Map that stores it.
package numeric

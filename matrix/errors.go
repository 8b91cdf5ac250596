// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No algorithm panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf(op, ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (dimension/square/mismatch) -> index -> singularity.

var (
	// ErrInvalidDimension is returned when requested dimensions are non-positive.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add/Sub of
	// different shapes, or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingularMatrix is returned for a zero determinant before inversion or an
	// unrecoverable zero pivot during elimination.
	ErrSingularMatrix = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilField indicates a constructor received a nil numeric.Field.
	ErrNilField = errors.New("matrix: nil element field")
)

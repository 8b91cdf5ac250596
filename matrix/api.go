// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/katalvlaran/lvlalg/numeric"

// NewZeros returns a zero-filled rows×cols matrix over f.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T any](f numeric.Field[T], rows, cols int) (*Dense[T], error) {
	return NewDense(f, rows, cols)
}

// ZerosLike returns a zero matrix with m's shape and field.
func ZerosLike[T any](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newLike(m, m.r, m.c), nil
}

// IdentityLike returns I_n over m's field, n = Rows(m); m must be square.
func IdentityLike[T any](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return Identity(m.f, m.r)
}

// IsSingular reports whether det(m) is the field's zero.
func IsSingular[T any](m *Dense[T]) (bool, error) {
	det, err := Determinant(m)
	if err != nil {
		return false, err
	}

	return numeric.IsZero(m.f, det), nil
}

// InverseTrace runs Inverse with an in-memory recorder and returns the
// recorded Gauss-Jordan steps alongside the result.
func InverseTrace[T any](m *Dense[T], opts ...Option) (*Dense[T], []Step[T], error) {
	var steps StepLog[T]
	inv, err := Inverse(m, append(opts[:len(opts):len(opts)], WithRecorder[T](&steps))...)
	if err != nil {
		return nil, nil, err
	}

	return inv, steps.Steps(), nil
}

// RowEchelonTrace runs RowEchelon with an in-memory recorder.
func RowEchelonTrace[T any](m *Dense[T], opts ...Option) (*Dense[T], []Step[T], error) {
	var steps StepLog[T]
	u, err := RowEchelon(m, append(opts[:len(opts):len(opts)], WithRecorder[T](&steps))...)
	if err != nil {
		return nil, nil, err
	}

	return u, steps.Steps(), nil
}

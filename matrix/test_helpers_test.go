// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/numeric"
)

// tol is the float comparison tolerance shared by the tests.
const tol = 1e-9

// MustNew ALLOCATES an r×c float64 matrix filled row-major with vals or fails the test.
func MustNew(t testing.TB, r, c int, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.New(r, c, vals...)
	require.NoError(t, err, "matrix.New(%d,%d)", r, c)

	return m
}

// MustInt ALLOCATES an r×c int matrix filled row-major with vals or fails the test.
func MustInt(t testing.TB, r, c int, vals ...int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.New(r, c, vals...)
	require.NoError(t, err, "matrix.New[int](%d,%d)", r, c)

	return m
}

// MustRat ALLOCATES an r×c rational matrix from integer numerators.
func MustRat(t testing.TB, r, c int, vals ...int64) *matrix.Dense[*big.Rat] {
	t.Helper()
	rs := make([]*big.Rat, len(vals))
	for k, v := range vals {
		rs[k] = numeric.R(v, 1)
	}
	m, err := matrix.NewDense[*big.Rat](numeric.Rational{}, r, c, rs...)
	require.NoError(t, err, "matrix.NewDense[*big.Rat](%d,%d)", r, c)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet[T any](t testing.TB, m *matrix.Dense[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RandFilledDense returns an r×c float64 matrix with entries in [-1,1)
// drawn from a fixed seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}

	return MustNew(t, r, c, vals...)
}

// DiagDominant returns RandFilledDense shifted by n on the diagonal, which is
// well conditioned and therefore safe for inversion round trips.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n))
	}

	return m
}

// RequireClose asserts that got and want share a shape and agree within tol.
func RequireClose(t testing.TB, want, got *matrix.Dense[float64]) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, tol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%sgot:\n%s", want, got)
}

// RequireEqual asserts exact equality under the matrices' field.
func RequireEqual[T any](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	require.True(t, matrix.Equal(want, got), "want:\n%sgot:\n%s", want, got)
}

// refuseDivision is a float64 field whose Div always fails; it drives the
// element-error paths of the elimination kernels.
type refuseDivision struct{ numeric.Scalar[float64] }

var errRefused = errors.New("division refused")

func (refuseDivision) Div(a, b float64) (float64, error) { return 0, errRefused }

// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for structural linear algebra operations.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/numeric"
)

func TestIdentity(t *testing.T) {
	id, err := matrix.IdentityOf[float64](3)
	require.NoError(t, err)
	RequireEqual(t, MustNew(t, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1), id)

	_, err = matrix.IdentityOf[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.Identity[float64](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilField)
}

// A 2×3 matrix yields a 2×2 identity (min of the dimensions).
func TestDense_IdentitySizedByMinDimension(t *testing.T) {
	m := MustInt(t, 2, 3, 1, 2, 3, 4, 5, 6)
	id := m.Identity()
	require.Equal(t, 2, id.Rows())
	require.Equal(t, 2, id.Cols())
	RequireEqual(t, MustInt(t, 2, 2, 1, 0, 0, 1), id)

	tall := MustInt(t, 4, 1)
	RequireEqual(t, MustInt(t, 1, 1, 1), tall.Identity())

	var empty *matrix.Dense[int]
	require.Nil(t, empty.Identity())
}

func TestMul(t *testing.T) {
	a := MustInt(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustInt(t, 3, 2, 7, 8, 9, 10, 11, 12)
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireEqual(t, MustInt(t, 2, 2, 58, 64, 139, 154), p)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	id, err := matrix.IdentityOf[float64](4)
	require.NoError(t, err)
	ii, err := matrix.Mul(id, id)
	require.NoError(t, err)
	RequireEqual(t, id, ii)

	m := RandFilledDense(t, 4, 4, 7)
	mi, err := matrix.Mul(m, id)
	require.NoError(t, err)
	RequireEqual(t, m, mi)
}

func TestTranspose(t *testing.T) {
	m := MustInt(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	RequireEqual(t, MustInt(t, 3, 2, 1, 4, 2, 5, 3, 6), tr)

	_, err = matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSwapRows_ReturnsFreshCopy(t *testing.T) {
	m := MustInt(t, 3, 2, 1, 2, 3, 4, 5, 6)
	sw, err := m.SwapRows(0, 2)
	require.NoError(t, err)
	RequireEqual(t, MustInt(t, 3, 2, 5, 6, 3, 4, 1, 2), sw)
	RequireEqual(t, MustInt(t, 3, 2, 1, 2, 3, 4, 5, 6), m)

	same, err := m.SwapRows(1, 1)
	require.NoError(t, err)
	RequireEqual(t, m, same)

	_, err = m.SwapRows(0, 3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = m.SwapRows(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

func TestSubmatrix(t *testing.T) {
	m := MustInt(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	for _, tc := range []struct {
		name     string
		row, col int
		want     []int
	}{
		{"corner", 0, 0, []int{5, 6, 8, 9}},
		{"center", 1, 1, []int{1, 3, 7, 9}},
		{"last", 2, 2, []int{1, 2, 4, 5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := m.Submatrix(tc.row, tc.col)
			require.NoError(t, err)
			require.Equal(t, 2, sub.Rows())
			require.Equal(t, tc.want, sub.Values())
		})
	}

	_, err := m.Submatrix(3, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = m.Submatrix(0, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = MustInt(t, 1, 3).Submatrix(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

func TestIdentity_RationalField(t *testing.T) {
	id, err := matrix.Identity[*big.Rat](numeric.Rational{}, 2)
	require.NoError(t, err)
	require.Zero(t, MustAt(t, id, 0, 0).Cmp(numeric.R(1, 1)))
	require.Zero(t, MustAt(t, id, 0, 1).Sign())
}

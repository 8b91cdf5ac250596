// SPDX-License-Identifier: MIT
// Package matrix - LU decomposition with row pivoting.
//
// Purpose:
//   - Factor a square matrix into P, L, U with P*L*U == A.
//   - Share the elimination core with RowEchelon/Rank (which also accept
//     rectangular input), so U always equals RowEchelon(A).
//
// Determinism & policy:
//   - Pivot search is a downward scan for the first exactly-nonzero entry in
//     the pivot column; the current pivot is kept whenever it is nonzero.
//   - After each row update, entries with |v| < epsilon are snapped to zero.
//     Integer kinds and exact fields have epsilon 0, so they are never snapped.
//   - A column without a nonzero pivot is skipped; singular input still
//     factors, with zero rows or steps in U.
//   - For integer kinds every multiplier must divide exactly.
//   - All mutation happens on private clones; the input is read-only.

package matrix

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/numeric"
)

const (
	opLU         = "LU"
	opRowEchelon = "RowEchelon"
	opRank       = "Rank"
)

// LUFactors holds the result of LUDecomposition.
//   - U: upper-triangular (row echelon) factor.
//   - L: unit lower-triangular multipliers.
//   - P: permutation (identity with rows exchanged).
type LUFactors[T any] struct {
	U, L, P *Dense[T]
}

// Reconstruct returns P*L*U, which equals the decomposed matrix (exactly for
// exact element types, within epsilon for floats).
func (lu *LUFactors[T]) Reconstruct() (*Dense[T], error) {
	pl, err := Mul(lu.P, lu.L)
	if err != nil {
		return nil, err
	}

	return Mul(pl, lu.U)
}

// LUDecomposition factors a square matrix with row-pivoted Gaussian elimination.
//
// Implementation:
//   - Stage 1: validate non-nil and square; L = I, P = I, U = clone(m).
//   - Stage 2: for each pivot column c (pivot row r), while U is not yet
//     eliminated:
//     a. if U[r,c] is zero, swap in the first row below with a nonzero entry
//     in column c (U rows, computed L multipliers and P columns); if there is
//     none the column is skipped and r stays put;
//     b. for every row i > r: coef = U[i,c]/U[r,c]; L[i,r] = coef;
//     U[i,:] -= coef*U[r,:], snapping |v| < epsilon to zero.
//   - Stage 3: return fresh U, L, P.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//   - numeric.ErrInexactDivision when an integer multiplier would truncate.
//   - ErrSingularMatrix when the element type refuses a pivot division (the
//     element error is wrapped alongside).
//
// A singular matrix is not an error here: U then carries zero rows.
//
// Options: WithEpsilon, WithRecorder, WithLogger.
// Complexity: Time O(n^3), Space O(n^2).
func LUDecomposition[T any](m *Dense[T], opts ...Option) (*LUFactors[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	u, l, p, err := eliminate(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	return &LUFactors[T]{U: u, L: l, P: p}, nil
}

// LU is LUDecomposition returning the factors as separate values.
func LU[T any](m *Dense[T], opts ...Option) (u, l, p *Dense[T], err error) {
	f, err := LUDecomposition(m, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return f.U, f.L, f.P, nil
}

// LUTrace runs LUDecomposition with an in-memory recorder and returns the
// recorded steps alongside the factors.
func LUTrace[T any](m *Dense[T], opts ...Option) (*LUFactors[T], []Step[T], error) {
	var steps StepLog[T]
	f, err := LUDecomposition(m, append(opts[:len(opts):len(opts)], WithRecorder[T](&steps))...)
	if err != nil {
		return nil, nil, err
	}

	return f, steps.Steps(), nil
}

// eliminate is the shared Gaussian elimination core. m may be rectangular;
// L and P are rows×rows, U has m's shape. A column without a usable pivot is
// skipped without advancing the pivot row.
func eliminate[T any](m *Dense[T], o Options) (u, l, p *Dense[T], err error) {
	f := m.f
	eps := epsilonFor(o, f)
	rec := recorderFor[T](o)
	lg := o.logger

	rows, cols := m.r, m.c
	u = m.Clone()
	if l, err = Identity(f, rows); err != nil {
		return nil, nil, nil, err
	}
	if p, err = Identity(f, rows); err != nil {
		return nil, nil, nil, err
	}

	zero := f.Zero()
	var (
		r, c, i, k int
		pivot      T
		coef       T
		v          T
	)
	for c = 0; c < cols && r < rows; c++ {
		if eliminated(u) {
			break
		}

		pivot = u.data[r*cols+c]
		if numeric.IsZero(f, pivot) {
			k = firstNonZeroBelow(u, r, c)
			if k < 0 {
				record(rec, u, fmtStepSkip, c, r)
				lg.Debug("column already clear", zap.Int("col", c), zap.Int("row", r))
				continue
			}
			record(rec, u, fmtStepSwap, r, k)
			lg.Debug("pivot swap", zap.Int("col", c), zap.Int("row", r), zap.Int("with", k))
			u.swapRowsInPlace(r, k)
			for i = 0; i < r; i++ { // carry the multipliers already computed
				l.data[r*rows+i], l.data[k*rows+i] = l.data[k*rows+i], l.data[r*rows+i]
			}
			p.swapColsInPlace(r, k)
			pivot = u.data[r*cols+c]
		}

		record(rec, u, fmtStepEliminate, c, r, c)
		for i = r + 1; i < rows; i++ {
			below := u.data[i*cols+c]
			if numeric.IsZero(f, below) {
				continue
			}
			if coef, err = numeric.ExactDiv(f, below, pivot); err != nil {
				lg.Debug("pivot division failed", zap.Int("row", i), zap.Int("col", c), zap.Error(err))
				return nil, nil, nil, denseErrorf("pivot", i, c, pivotDivError(err))
			}
			l.data[i*rows+r] = coef
			u.data[i*cols+c] = zero
			for k = c + 1; k < cols; k++ {
				v = f.Sub(u.data[i*cols+k], f.Mul(coef, u.data[r*cols+k]))
				if numeric.WithinTolerance(f, v, eps) {
					v = zero
				}
				u.data[i*cols+k] = v
			}
		}
		r++
	}
	record(rec, u, StepDone)

	return u, l, p, nil
}

// firstNonZeroBelow returns the first row index > r whose entry in column c
// is nonzero, or -1.
func firstNonZeroBelow[T any](m *Dense[T], r, c int) int {
	for i := r + 1; i < m.r; i++ {
		if !numeric.IsZero(m.f, m.data[i*m.c+c]) {
			return i
		}
	}

	return -1
}

// pivotDivError classifies a failed pivot division. A truncated quotient
// (numeric.ErrInexactDivision) is reported on its own; any other element
// error also marks the pivot as singular.
func pivotDivError(err error) error {
	if errors.Is(err, numeric.ErrInexactDivision) {
		return err
	}

	return errors.Join(ErrSingularMatrix, err)
}

// RowEchelon returns the U factor of the elimination core. For square m the
// result is identical to LUDecomposition(m).U; rectangular and rank-deficient
// matrices are accepted too (columns without a pivot are skipped).
//
// Errors: ErrNilMatrix, numeric.ErrInexactDivision, ErrSingularMatrix
// (element division failure).
// Options: WithEpsilon, WithRecorder, WithLogger.
func RowEchelon[T any](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	u, _, _, err := eliminate(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}

	return u, nil
}

// Rank returns the number of rows of RowEchelon(m) holding at least one
// nonzero entry. Each row is scanned left to right and the scan stops at the
// first nonzero column.
//
// Errors: those of RowEchelon, wrapped with "Rank".
func Rank[T any](m *Dense[T], opts ...Option) (int, error) {
	u, err := RowEchelon(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	rank := 0
	for i := 0; i < u.r; i++ {
		if leadingColumn(u, i) >= 0 {
			rank++
		}
	}

	return rank, nil
}

// RankTrace is Rank with an in-memory recorder.
func RankTrace[T any](m *Dense[T], opts ...Option) (int, []Step[T], error) {
	var steps StepLog[T]
	rank, err := Rank(m, append(opts[:len(opts):len(opts)], WithRecorder[T](&steps))...)
	if err != nil {
		return 0, nil, err
	}

	return rank, steps.Steps(), nil
}

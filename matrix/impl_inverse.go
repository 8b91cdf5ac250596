// SPDX-License-Identifier: MIT
// Package matrix - Gauss-Jordan inversion.
//
// Purpose:
//   - Compute A^{-1} by reducing [A | I] to [I | A^{-1}] with partial pivoting.
//
// Singularity policy:
//   - Pre-check: Determinant(A) == 0 fails fast with ErrSingularMatrix.
//   - During elimination: a selected pivot whose magnitude is below epsilon
//     (exactly zero for exact element types) is ErrSingularMatrix too.
//     Under floating-point rounding the two tests can disagree near
//     singularity; the elimination test is the one that guards the division.
//   - Integer kinds: a pivot row that does not divide exactly (the inverse
//     leaves the integers) is numeric.ErrInexactDivision.

package matrix

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/numeric"
)

const opInverse = "Inverse"

// Inverse returns A^{-1} for a square, non-singular matrix.
//
// Implementation:
//   - Stage 1: validate; reject det == 0.
//   - Stage 2: result = I, work = clone(A). For each pivot row i:
//     a. pick the row >= i with the largest |work[.,i]|; swap it into row i
//     in both work and result;
//     b. divide row i of both by the pivot;
//     c. subtract work[k,i] × row i from every other row k in both.
//   - Stage 3: return result.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingularMatrix,
// numeric.ErrInexactDivision.
// Options: WithEpsilon, WithRecorder (records work), WithLogger.
// Complexity: O(n!) for the determinant pre-check, O(n^3) for the elimination.
func Inverse[T any](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	f := m.f

	det, _ := Determinant(m) // shape already validated
	if numeric.IsZero(f, det) {
		o.logger.Debug("zero determinant", zap.Int("n", m.r))
		return nil, matrixErrorf(opInverse, ErrSingularMatrix)
	}

	res, err := gaussJordan(m, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// gaussJordan reduces a clone of m; m must be square.
func gaussJordan[T any](m *Dense[T], o Options) (*Dense[T], error) {
	f := m.f
	eps := epsilonFor(o, f)
	rec := recorderFor[T](o)
	n := m.r

	work := m.Clone()
	res, err := Identity(f, n)
	if err != nil {
		return nil, err
	}

	zero := f.Zero()
	col := make([]T, n)
	var i, j, k, pr int
	var piv, factor T
	for i = 0; i < n; i++ {
		// a. partial pivot: largest magnitude in column i among rows >= i
		for k = i; k < n; k++ {
			col[k-i] = work.data[k*n+i]
		}
		pr = i + numeric.MaxAbsIndex(f, col[:n-i])
		piv = work.data[pr*n+i]
		if numeric.IsZero(f, piv) || numeric.WithinTolerance(f, piv, eps) {
			o.logger.Debug("zero pivot during elimination", zap.Int("col", i))
			return nil, denseErrorf("pivot", i, i, ErrSingularMatrix)
		}
		if pr != i {
			record(rec, work, fmtStepSwap, i, pr)
			work.swapRowsInPlace(i, pr)
			res.swapRowsInPlace(i, pr)
		}

		// b. normalize the pivot row
		record(rec, work, fmtStepNormalize, i)
		for j = 0; j < n; j++ {
			if work.data[i*n+j], err = numeric.ExactDiv(f, work.data[i*n+j], piv); err != nil {
				return nil, denseErrorf("pivot", i, i, pivotDivError(err))
			}
			if res.data[i*n+j], err = numeric.ExactDiv(f, res.data[i*n+j], piv); err != nil {
				return nil, denseErrorf("pivot", i, i, pivotDivError(err))
			}
		}

		// c. clear column i everywhere else
		record(rec, work, fmtStepClear, i)
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			factor = work.data[k*n+i]
			if f.Cmp(factor, zero) == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				work.data[k*n+j] = f.Sub(work.data[k*n+j], f.Mul(factor, work.data[i*n+j]))
				res.data[k*n+j] = f.Sub(res.data[k*n+j], f.Mul(factor, res.data[i*n+j]))
			}
		}
	}
	record(rec, work, StepDone)

	return res, nil
}

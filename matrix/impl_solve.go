// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlalg/numeric"

const opSolve = "Solve"

// Solve returns X with A*X == B, reusing the pivoted LU factors of A:
// P*L*U*X = B  =>  L*Y = P^T*B (forward), U*X = Y (backward).
// B may carry several right-hand sides as columns.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrShapeMismatch (B.Rows != A.Rows),
// ErrSingularMatrix (a zero on U's diagonal, or a failing element division),
// numeric.ErrInexactDivision (an integer solution that does not exist).
// Options: those of LUDecomposition.
func Solve[T any](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.r != a.r {
		return nil, matrixErrorf(opSolve, ErrShapeMismatch)
	}

	lu, err := LUDecomposition(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	pt, _ := Transpose(lu.P)
	y, _ := Mul(pt, b)

	f := a.f
	n, k := a.r, b.c
	var i, j, c int
	var acc T

	// Forward: L has a unit diagonal.
	for c = 0; c < k; c++ {
		for i = 1; i < n; i++ {
			acc = y.data[i*k+c]
			for j = 0; j < i; j++ {
				acc = f.Sub(acc, f.Mul(lu.L.data[i*n+j], y.data[j*k+c]))
			}
			y.data[i*k+c] = acc
		}
	}

	// Backward.
	for i = n - 1; i >= 0; i-- {
		d := lu.U.data[i*n+i]
		if numeric.IsZero(f, d) {
			return nil, matrixErrorf(opSolve, denseErrorf("pivot", i, i, ErrSingularMatrix))
		}
		for c = 0; c < k; c++ {
			acc = y.data[i*k+c]
			for j = i + 1; j < n; j++ {
				acc = f.Sub(acc, f.Mul(lu.U.data[i*n+j], y.data[j*k+c]))
			}
			if y.data[i*k+c], err = numeric.ExactDiv(f, acc, d); err != nil {
				return nil, matrixErrorf(opSolve, denseErrorf("pivot", i, i, pivotDivError(err)))
			}
		}
	}

	return y, nil
}

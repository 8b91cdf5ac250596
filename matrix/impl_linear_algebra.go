// SPDX-License-Identifier: MIT
// Package matrix - structural and product kernels.
//
// Purpose:
//   - Identity construction, matrix product, transpose.
//   - Copying row/column surgery used by elimination and cofactor expansion
//     (SwapRows, Submatrix).
//
// Notes:
//   - Every kernel returns a fresh *Dense; operands are read-only.
//   - Validation goes through validators.go; errors are wrapped via matrixErrorf.

package matrix

import "github.com/katalvlaran/lvlalg/numeric"

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opIdentity  = "Identity"
	opSwapRows  = "SwapRows"
	opSubmatrix = "Submatrix"
)

// Identity returns I_n over f (ones on the diagonal, zeros elsewhere).
//
// Errors: ErrNilField, ErrInvalidDimension (n <= 0).
// Complexity: O(n^2).
func Identity[T any](f numeric.Field[T], n int) (*Dense[T], error) {
	I, err := NewDense[T](f, n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := f.One()
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// IdentityOf is Identity over numeric.Scalar[T].
func IdentityOf[T numeric.Real](n int) (*Dense[T], error) {
	return Identity[T](numeric.Scalar[T]{}, n)
}

// Identity returns the identity sized min(rows, cols) over m's field.
// For square m that is Rows(). A nil receiver yields nil.
func (m *Dense[T]) Identity() *Dense[T] {
	if m == nil {
		return nil
	}
	n := min(m.r, m.c)
	I, _ := Identity(m.f, n) // n >= 1 for every constructed Dense

	return I
}

// Mul returns the matrix product a × b of shape a.Rows × b.Cols.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→j→k inner-product sums starting from the field's zero.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T any](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	f := a.f
	rows, inner, cols := a.r, a.c, b.c
	res := newLike(a, rows, cols)
	var i, j, k int
	var sum T
	for i = 0; i < rows; i++ {
		rowA := a.data[i*inner : (i+1)*inner]
		for j = 0; j < cols; j++ {
			sum = f.Zero()
			for k = 0; k < inner; k++ {
				sum = f.Add(sum, f.Mul(rowA[k], b.data[k*cols+j]))
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
// Errors: ErrNilMatrix.
func Transpose[T any](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newLike(m, m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// SwapRows returns a copy of m with rows i and j exchanged. i == j yields a
// plain copy.
//
// Errors: ErrIndexOutOfRange.
func (m *Dense[T]) SwapRows(i, j int) (*Dense[T], error) {
	if err := validateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err := validateRowIndex(m, j); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	out := m.Clone()
	out.swapRowsInPlace(i, j)

	return out, nil
}

// Submatrix returns the (rows-1)×(cols-1) minor obtained by deleting
// excludeRow and excludeCol. Used by cofactor expansion.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid row or column.
//   - ErrInvalidDimension when m has a single row or column (the minor would be empty).
func (m *Dense[T]) Submatrix(excludeRow, excludeCol int) (*Dense[T], error) {
	if err := validateRowIndex(m, excludeRow); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := validateColIndex(m, excludeCol); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if m.r == 1 || m.c == 1 {
		return nil, matrixErrorf(opSubmatrix, ErrInvalidDimension)
	}

	out := newLike(m, m.r-1, m.c-1)
	dst := 0
	for i := 0; i < m.r; i++ {
		if i == excludeRow {
			continue
		}
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j == excludeCol {
				continue
			}
			out.data[dst] = m.data[base+j]
			dst++
		}
	}

	return out, nil
}

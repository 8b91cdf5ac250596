// SPDX-License-Identifier: MIT

// Package matrix: the read/write surface shared by Dense and foreign matrices.
package matrix

import "github.com/katalvlaran/lvlalg/numeric"

// Matrix is a bounds-checked two-dimensional array of T.
// Dense implements it; other layouts can be imported with DenseOf.
type Matrix[T any] interface {
	Rows() int
	Cols() int
	At(i, j int) (T, error)
	Set(i, j int, v T) error
}

var _ Matrix[float64] = (*Dense[float64])(nil)

const opDenseOf = "DenseOf"

// DenseOf copies any Matrix into a fresh Dense over f.
//
// Errors: ErrNilMatrix, ErrNilField, ErrInvalidDimension, and any error
// returned by src.At.
// Complexity: O(r*c).
func DenseOf[T any](f numeric.Field[T], src Matrix[T]) (*Dense[T], error) {
	if src == nil {
		return nil, matrixErrorf(opDenseOf, ErrNilMatrix)
	}
	out, err := NewDense(f, src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	var i, j int
	var v T
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, matrixErrorf(opDenseOf, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

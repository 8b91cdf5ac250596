// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/numeric"
)

const opFromGonum = "FromGonum"

// ToGonum copies a float64 matrix into a gonum *mat.Dense.
// A nil input yields nil.
func ToGonum(m *Dense[float64]) *mat.Dense {
	if m == nil {
		return nil
	}

	return mat.NewDense(m.r, m.c, m.Values())
}

// FromGonum copies any gonum matrix into a Dense[float64] over numeric.Scalar.
//
// Errors: ErrNilMatrix for a nil input, ErrInvalidDimension for an empty one.
func FromGonum(g mat.Matrix) (*Dense[float64], error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense[float64](numeric.Scalar[float64]{}, r, c)
	if err != nil {
		return nil, fmt.Errorf("%s(%dx%d): %w", opFromGonum, r, c, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package matrix

const opDeterminant = "Determinant"

// Determinant computes det(m) by cofactor expansion along the first row:
//
//	det(M) = Σ_col (-1)^col * M[0,col] * det(minor(M, 0, col))
//
// A 1×1 matrix returns its single element. The expansion is independent of
// the LU kernel and only uses ring operations (no division), so it is exact
// for every exact element type, integers included.
//
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: O(n!) time; callers bound n.
func Determinant[T any](m *Dense[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return cofactorExpand(m), nil
}

// cofactorExpand assumes m is square and non-empty.
func cofactorExpand[T any](m *Dense[T]) T {
	f := m.f
	if m.r == 1 {
		return m.data[0]
	}
	if m.r == 2 { // ad - bc; same value as the expansion, without allocations
		return f.Sub(f.Mul(m.data[0], m.data[3]), f.Mul(m.data[1], m.data[2]))
	}

	sum := f.Zero()
	for col := 0; col < m.c; col++ {
		a := m.data[col]
		if f.Cmp(a, f.Zero()) == 0 {
			continue // zero cofactor term
		}
		minor, _ := m.Submatrix(0, col) // indices are in range by construction
		term := f.Mul(a, cofactorExpand(minor))
		if col%2 == 0 {
			sum = f.Add(sum, term)
		} else {
			sum = f.Sub(sum, term)
		}
	}

	return sum
}

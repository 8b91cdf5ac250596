// SPDX-License-Identifier: MIT

package matrix

// IsUpperTriangular reports whether every entry strictly below the main
// diagonal is exactly the field's zero. Rectangular matrices are accepted.
// A nil matrix is not upper-triangular.
//
// Complexity: O(r*c) worst case, stops at the first violation.
func IsUpperTriangular[T any](m *Dense[T]) bool {
	if m == nil {
		return false
	}
	zero := m.f.Zero()
	for i := 1; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < i && j < m.c; j++ {
			if m.f.Cmp(m.data[base+j], zero) != 0 {
				return false
			}
		}
	}

	return true
}

// IsRowEchelon reports whether m is in row echelon form: each nonzero row's
// leading entry sits strictly right of the previous row's, and zero rows come
// last. Row echelon form implies IsUpperTriangular.
func IsRowEchelon[T any](m *Dense[T]) bool {
	if m == nil {
		return false
	}
	prev := -1
	for i := 0; i < m.r; i++ {
		lead := leadingColumn(m, i)
		switch {
		case lead < 0:
			prev = m.c // every later row must be zero too
		case lead <= prev:
			return false
		default:
			prev = lead
		}
	}

	return true
}

// leadingColumn returns the first column of row i holding a nonzero entry,
// or -1 for a zero row.
func leadingColumn[T any](m *Dense[T], i int) int {
	zero := m.f.Zero()
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if m.f.Cmp(m.data[base+j], zero) != 0 {
			return j
		}
	}

	return -1
}

// eliminated is the decomposition loop's termination predicate: the working
// matrix is upper-triangular and its rows are in echelon order.
func eliminated[T any](m *Dense[T]) bool {
	return IsUpperTriangular(m) && IsRowEchelon(m)
}

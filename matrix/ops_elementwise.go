// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels.
//
// Purpose:
//   - Add/Sub (shape-checked), scalar Scale/DivScalar, unary Neg/Inc/Dec.
//   - Exact Equal/NotEqual and tolerance-based AllClose.
//
// Contract:
//   - Inputs are never mutated; every kernel allocates exactly one result.
//   - Loops run over the flat buffer 0..r*c-1 (row-major, deterministic).

package matrix

import "fmt"

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opAllClose  = "AllClose"
)

// ewZip computes out[k] = fn(a[k], b[k]) for same-shaped operands.
func ewZip[T any](a, b *Dense[T], opTag string, fn func(x, y T) T) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newLike(a, a.r, a.c)
	for k := range a.data {
		out.data[k] = fn(a.data[k], b.data[k])
	}

	return out, nil
}

// ewMap computes out[k] = fn(m[k]).
func ewMap[T any](m *Dense[T], fn func(x T) T) *Dense[T] {
	out := newLike(m, m.r, m.c)
	for k, v := range m.data {
		out.data[k] = fn(v)
	}

	return out
}

// Add returns the element-wise sum a + b.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (rows or columns differ).
// Complexity: O(r*c).
func Add[T any](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil {
		return nil, matrixErrorf(opAdd, ErrNilMatrix)
	}

	return ewZip(a, b, opAdd, a.f.Add)
}

// Sub returns the element-wise difference a - b.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Sub[T any](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil {
		return nil, matrixErrorf(opSub, ErrNilMatrix)
	}

	return ewZip(a, b, opSub, a.f.Sub)
}

// Scale returns alpha*m. A nil receiver yields nil.
func (m *Dense[T]) Scale(alpha T) *Dense[T] {
	if m == nil {
		return nil
	}

	return ewMap(m, func(x T) T { return m.f.Mul(x, alpha) })
}

// DivScalar returns m/alpha element-wise.
//
// Division by zero is the element type's business: IEEE floats produce ±Inf
// or NaN without error, integer kinds and rationals make DivScalar fail with
// the field's error (numeric.ErrDivisionByZero) wrapped with the first
// offending coordinates. A nil receiver is ErrNilMatrix.
func (m *Dense[T]) DivScalar(alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	out := newLike(m, m.r, m.c)
	for k, v := range m.data {
		q, err := m.f.Div(v, alpha)
		if err != nil {
			return nil, denseErrorf(opDivScalar, k/m.c, k%m.c, err)
		}
		out.data[k] = q
	}

	return out, nil
}

// Neg returns -m. A nil receiver yields nil.
func (m *Dense[T]) Neg() *Dense[T] {
	if m == nil {
		return nil
	}

	return ewMap(m, m.f.Neg)
}

// Inc returns m with one added to every element. A nil receiver yields nil.
func (m *Dense[T]) Inc() *Dense[T] {
	if m == nil {
		return nil
	}
	one := m.f.One()
	return ewMap(m, func(x T) T { return m.f.Add(x, one) })
}

// Dec returns m with one subtracted from every element. A nil receiver yields nil.
func (m *Dense[T]) Dec() *Dense[T] {
	if m == nil {
		return nil
	}
	one := m.f.One()
	return ewMap(m, func(x T) T { return m.f.Sub(x, one) })
}

// Equal reports same shape and exact pairwise equality under the element
// order (no tolerance). Two nil matrices are equal; nil never equals non-nil.
func Equal[T any](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.f.Cmp(a.data[k], b.data[k]) != 0 {
			return false
		}
	}

	return true
}

// NotEqual is !Equal(a, b).
func NotEqual[T any](a, b *Dense[T]) bool { return !Equal(a, b) }

// Equal is the method form of Equal(m, other).
func (m *Dense[T]) Equal(other *Dense[T]) bool { return Equal(m, other) }

// AllClose reports whether |a[i,j] - b[i,j]| <= tol for every element.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
func AllClose[T any](a, b *Dense[T], tol T) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	f := a.f
	tol = f.Abs(tol)
	for k := range a.data {
		if f.Cmp(f.Abs(f.Sub(a.data[k], b.data[k])), tol) > 0 {
			return false, nil
		}
	}

	return true, nil
}

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

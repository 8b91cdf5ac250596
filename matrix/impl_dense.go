// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Carry the element Field with the data so every kernel can do arithmetic on T.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) fill; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols matrix over element type T.
//   - r,c hold dimensions (both > 0 for every value handed out by this package).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - f is the element Field used by every arithmetic kernel.
//
// A Dense is never resized. Kernels return fresh matrices; only Set mutates.
type Dense[T any] struct {
	r, c int
	data []T
	f    numeric.Field[T]
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates a rows×cols matrix over f.
//
// values, when given, fill the matrix row-major: extra values are ignored,
// missing cells are set to f.Zero().
//
// Errors:
//   - ErrNilField when f is nil.
//   - ErrInvalidDimension when rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[T any](f numeric.Field[T], rows, cols int, values ...T) (*Dense[T], error) {
	if f == nil {
		return nil, ErrNilField
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimension
	}

	n := rows * cols
	buf := make([]T, n)
	k := copy(buf, values) // consumes at most n values
	if k < n {
		zero := f.Zero()
		for idx := k; idx < n; idx++ {
			buf[idx] = zero
		}
	}

	return &Dense[T]{r: rows, c: cols, data: buf, f: f}, nil
}

// New creates a rows×cols matrix over a built-in integer or float kind.
// It is NewDense with numeric.Scalar[T].
func New[T numeric.Real](rows, cols int, values ...T) (*Dense[T], error) {
	return NewDense[T](numeric.Scalar[T]{}, rows, cols, values...)
}

// newLike allocates a zero-filled matrix with the same field as m.
// Shapes come from already-validated matrices, so no error is possible.
func newLike[T any](m *Dense[T], rows, cols int) *Dense[T] {
	out, _ := NewDense[T](m.f, rows, cols)

	return out
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports rows == cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// Field returns the element field the matrix computes with.
func (m *Dense[T]) Field() numeric.Field[T] { return m.f }

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy of the buffer. Element values themselves are
// shared, which is safe because Field implementations never mutate them.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, f: m.f}
}

// Values returns a row-major copy of the elements.
func (m *Dense[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrIndexOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Do visits each element in row-major order; it stops when f returns false.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as bracketed, comma-separated lines (values via %v).
// Intended for logs and debugging, not for hot paths.
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// ---------- in-place row primitives (private; callers own the receiver) ----------

// swapRowsInPlace exchanges rows i and j of a matrix the caller owns.
func (m *Dense[T]) swapRowsInPlace(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// swapColsInPlace exchanges columns i and j of a matrix the caller owns.
func (m *Dense[T]) swapColsInPlace(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < m.r; r++ {
		base := r * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}
}

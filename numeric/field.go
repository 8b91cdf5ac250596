// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned by Field.Div when the element type cannot
// represent a quotient by zero (integer kinds, rationals).
var ErrDivisionByZero = errors.New("numeric: division by zero")

// ErrInexactDivision is returned by ExactDiv when a field without a tolerance
// (integer kinds) truncates the quotient.
var ErrInexactDivision = errors.New("numeric: inexact division")

// Real is the type set served by Scalar: every built-in integer and float
// kind, named types included.
type Real interface {
	constraints.Integer | constraints.Float
}

// Field is the capability contract an element type must satisfy.
//
// Values handed to and returned from a Field are treated as immutable:
// implementations over reference types (for example *big.Rat) must allocate
// fresh results and never write into their arguments.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	// Div returns a / b. Types without a representation for a quotient by
	// zero return ErrDivisionByZero; IEEE floats yield ±Inf/NaN and no error.
	Div(a, b T) (T, error)

	// Cmp returns -1, 0 or +1 for a < b, a == b, a > b.
	Cmp(a, b T) int

	Abs(a T) T
	Neg(a T) T

	// FromInt converts i, clamping to the representable range of T.
	FromInt(i int) T
	// FromFloat64 converts x; used to materialize the constant table.
	FromFloat64(x float64) T
}

// exact is implemented by fields whose arithmetic never drifts.
// Their tolerance is zero regardless of Nano.
type exact interface {
	Exact() bool
}

// IsZero reports whether v equals f.Zero().
func IsZero[T any](f Field[T], v T) bool { return f.Cmp(v, f.Zero()) == 0 }

// Equal reports exact equality under f's order.
func Equal[T any](f Field[T], a, b T) bool { return f.Cmp(a, b) == 0 }

// Less reports a < b under f's order.
func Less[T any](f Field[T], a, b T) bool { return f.Cmp(a, b) < 0 }

// WithinTolerance reports |v| < eps. With eps equal to zero it is never true,
// which keeps exact element types unaffected by snapping.
func WithinTolerance[T any](f Field[T], v, eps T) bool {
	return f.Cmp(f.Abs(v), eps) < 0
}

// MaxAbsIndex returns the index of the element with the largest magnitude
// (first one on ties), or -1 for an empty slice.
func MaxAbsIndex[T any](f Field[T], vs []T) int {
	best := -1
	var bestAbs T
	for i, v := range vs {
		a := f.Abs(v)
		if best < 0 || f.Cmp(a, bestAbs) > 0 {
			best, bestAbs = i, a
		}
	}

	return best
}

// Approximate reports whether f carries a nonzero tolerance. Floats do;
// integer kinds and exact fields do not.
func Approximate[T any](f Field[T]) bool { return !IsZero(f, Epsilon(f)) }

// ExactDiv returns a / b like f.Div, and for fields without a tolerance also
// requires q*b == a. A truncated integer quotient yields ErrInexactDivision.
func ExactDiv[T any](f Field[T], a, b T) (T, error) {
	q, err := f.Div(a, b)
	if err != nil {
		return q, err
	}
	if !Approximate(f) && f.Cmp(f.Mul(q, b), a) != 0 {
		return q, ErrInexactDivision
	}

	return q, nil
}

// SPDX-License-Identifier: MIT

package numeric

import (
	"cmp"
	"math"
	"reflect"
)

// Scalar is the Field over a built-in integer or float kind.
// The zero value is ready to use.
//
// Integer kinds follow Go's wrapping arithmetic except where noted:
// Div reports ErrDivisionByZero instead of panicking, and FromInt/FromFloat64
// saturate at the type bounds.
type Scalar[T Real] struct{}

var (
	_ Field[float64] = Scalar[float64]{}
	_ Field[int]     = Scalar[int]{}
)

func (Scalar[T]) Zero() T { return 0 }
func (Scalar[T]) One() T  { return 1 }

func (Scalar[T]) Add(a, b T) T { return a + b }
func (Scalar[T]) Sub(a, b T) T { return a - b }
func (Scalar[T]) Mul(a, b T) T { return a * b }

// Div returns a/b. Floats follow IEEE 754 (±Inf, NaN); integer kinds
// return ErrDivisionByZero for b == 0.
func (Scalar[T]) Div(a, b T) (T, error) {
	if b == 0 && !kindOf[T]().float {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// Cmp orders values with cmp.Compare; NaN sorts below every number and
// equals itself, which keeps the order total.
func (Scalar[T]) Cmp(a, b T) int { return cmp.Compare(a, b) }

// Abs returns |a|. For the minimum signed integer the result wraps, as in Go.
func (Scalar[T]) Abs(a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// Neg returns -a (wrapping for unsigned kinds).
func (Scalar[T]) Neg(a T) T { return -a }

// FromInt converts i, clamping to [min(T), max(T)].
func (Scalar[T]) FromInt(i int) T {
	k := kindOf[T]()
	switch {
	case k.float:
		return T(i)
	case k.unsigned:
		if i < 0 {
			return 0
		}
		if hi := k.maxUint(); uint64(i) > hi {
			return T(hi)
		}
		return T(i)
	default:
		v := int64(i)
		if hi := k.maxInt(); v > hi {
			return T(hi)
		}
		if lo := k.minInt(); v < lo {
			return T(lo)
		}
		return T(i)
	}
}

// FromFloat64 converts x. Integer kinds truncate toward zero and saturate;
// NaN maps to zero.
func (Scalar[T]) FromFloat64(x float64) T {
	k := kindOf[T]()
	if k.float {
		return T(x)
	}
	if math.IsNaN(x) {
		return 0
	}
	x = math.Trunc(x)
	if k.unsigned {
		hi := k.maxUint()
		switch {
		case x <= 0:
			return 0
		case x >= float64(hi):
			return T(hi)
		}
		return T(x)
	}
	hi, lo := k.maxInt(), k.minInt()
	switch {
	case x >= float64(hi):
		return T(hi)
	case x <= float64(lo):
		return T(lo)
	}

	return T(x)
}

// kindInfo describes the underlying kind of a Real type parameter.
type kindInfo struct {
	float    bool
	unsigned bool
	bits     int
}

func kindOf[T Real]() kindInfo {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return kindInfo{float: true, bits: t.Bits()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindInfo{unsigned: true, bits: t.Bits()}
	default:
		return kindInfo{bits: t.Bits()}
	}
}

func (k kindInfo) maxUint() uint64 {
	if k.bits >= 64 {
		return math.MaxUint64
	}

	return 1<<k.bits - 1
}

func (k kindInfo) maxInt() int64 {
	if k.bits >= 64 {
		return math.MaxInt64
	}

	return 1<<(k.bits-1) - 1
}

func (k kindInfo) minInt() int64 {
	if k.bits >= 64 {
		return math.MinInt64
	}

	return -1 << (k.bits - 1)
}

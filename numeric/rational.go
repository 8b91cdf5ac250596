// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/big"
)

// Rational is the exact Field over *big.Rat.
//
// Every operation returns a freshly allocated *big.Rat; arguments are never
// written. A nil *big.Rat is read as zero.
type Rational struct{}

var _ Field[*big.Rat] = Rational{}

// Exact marks Rational as drift-free: its tolerance is zero.
func (Rational) Exact() bool { return true }

func (Rational) Zero() *big.Rat { return new(big.Rat) }
func (Rational) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(ratOrZero(a), ratOrZero(b)) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(ratOrZero(a), ratOrZero(b)) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(ratOrZero(a), ratOrZero(b)) }

// Div returns a/b or ErrDivisionByZero.
func (Rational) Div(a, b *big.Rat) (*big.Rat, error) {
	b = ratOrZero(b)
	if b.Sign() == 0 {
		return new(big.Rat), ErrDivisionByZero
	}

	return new(big.Rat).Quo(ratOrZero(a), b), nil
}

func (Rational) Cmp(a, b *big.Rat) int { return ratOrZero(a).Cmp(ratOrZero(b)) }

func (Rational) Abs(a *big.Rat) *big.Rat { return new(big.Rat).Abs(ratOrZero(a)) }
func (Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(ratOrZero(a)) }

// FromInt is exact; big.Rat has no range to saturate against.
func (Rational) FromInt(i int) *big.Rat { return new(big.Rat).SetInt64(int64(i)) }

// FromFloat64 converts x exactly. NaN maps to zero and ±Inf to the largest
// finite float64 with the matching sign.
func (Rational) FromFloat64(x float64) *big.Rat {
	switch {
	case math.IsNaN(x):
		return new(big.Rat)
	case math.IsInf(x, 1):
		x = math.MaxFloat64
	case math.IsInf(x, -1):
		x = -math.MaxFloat64
	}

	return new(big.Rat).SetFloat64(x)
}

// R is a shorthand for big.NewRat(num, den) in fixtures and examples.
func R(num, den int64) *big.Rat { return big.NewRat(num, den) }

func ratOrZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}

	return r
}

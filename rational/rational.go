// SPDX-License-Identifier: MIT
// Package rational: the Rat value type and its constructors.

package rational

import (
	"math/big"
)

// zeroRat backs the zero value Rat{}. It is only ever read.
var zeroRat = new(big.Rat)

// Rat is an immutable exact rational number in lowest terms.
// The zero value is 0. A Rat must not be copied into a *big.Rat that is later
// mutated; use BigRat to obtain an independent copy.
type Rat struct {
	v *big.Rat // nil means 0; never mutated after construction
}

// val returns the backing *big.Rat for read-only use.
func (x Rat) val() *big.Rat {
	if x.v == nil {
		return zeroRat
	}

	return x.v
}

// wrap takes ownership of r. Callers must not retain r.
func wrap(r *big.Rat) Rat {
	return Rat{v: r}
}

// Zero returns 0.
func Zero() Rat { return Rat{} }

// One returns 1.
func One() Rat { return wrap(big.NewRat(1, 1)) }

// FromInt returns the integer n as a Rat.
// Complexity: O(1).
func FromInt(n int64) Rat {
	return wrap(new(big.Rat).SetInt64(n))
}

// New returns num/den reduced to lowest terms with the sign moved onto the
// numerator.
//
// Errors:
//   - ErrDivisionByZero if den == 0.
//
// Complexity: O(log(min(|num|, |den|))) for the gcd reduction.
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ratErrorf(opNew, ErrDivisionByZero)
	}
	// SetFrac64 normalizes: positive denominator, gcd == 1.
	return wrap(new(big.Rat).SetFrac64(num, den)), nil
}

// MustNew is like New but panics on a zero denominator.
// Intended for constants in tests and examples.
func MustNew(num, den int64) Rat {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromBig returns num/den for arbitrary-precision integers. Neither argument is
// retained; both are copied before normalization.
//
// Errors:
//   - ErrDivisionByZero if den is nil or zero.
//   - ErrSyntax if num is nil.
func FromBig(num, den *big.Int) (Rat, error) {
	if num == nil {
		return Rat{}, ratErrorf(opFromBig, ErrSyntax)
	}
	if den == nil || den.Sign() == 0 {
		return Rat{}, ratErrorf(opFromBig, ErrDivisionByZero)
	}
	// SetFrac copies num and den into fresh storage.
	return wrap(new(big.Rat).SetFrac(num, den)), nil
}

// FromBigInt returns the integer n as a Rat. A nil n yields 0.
func FromBigInt(n *big.Int) Rat {
	if n == nil {
		return Rat{}
	}

	return wrap(new(big.Rat).SetInt(n))
}

// FromBigRat returns a Rat holding a copy of r. A nil r yields 0.
func FromBigRat(r *big.Rat) Rat {
	if r == nil {
		return Rat{}
	}

	return wrap(new(big.Rat).Set(r))
}

// BigRat returns an independent *big.Rat copy of x.
func (x Rat) BigRat() *big.Rat {
	return new(big.Rat).Set(x.val())
}

// Num returns a copy of the numerator. Its sign is the sign of x.
func (x Rat) Num() *big.Int {
	return new(big.Int).Set(x.val().Num())
}

// Denom returns a copy of the denominator, which is always > 0.
func (x Rat) Denom() *big.Int {
	return new(big.Int).Set(x.val().Denom())
}

// String returns "n" for integers and "n/d" otherwise.
func (x Rat) String() string {
	return x.val().RatString()
}

// SPDX-License-Identifier: MIT
// Package rational: closed arithmetic on Rat.
//
// Every function allocates a fresh *big.Rat for its result; receivers and
// arguments are only read, so concurrent use of shared operands is safe.
// math/big keeps results normalized (positive denominator, lowest terms).

package rational

import "math/big"

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	return wrap(new(big.Rat).Add(x.val(), y.val()))
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	return wrap(new(big.Rat).Sub(x.val(), y.val()))
}

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	return wrap(new(big.Rat).Mul(x.val(), y.val()))
}

// Div returns x / y.
//
// Errors:
//   - ErrDivisionByZero if y == 0.
func (x Rat) Div(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ratErrorf(opDiv, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Quo(x.val(), y.val())), nil
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	return wrap(new(big.Rat).Neg(x.val()))
}

// Abs returns |x|.
func (x Rat) Abs() Rat {
	return wrap(new(big.Rat).Abs(x.val()))
}

// Inv returns 1/x.
//
// Errors:
//   - ErrDivisionByZero if x == 0.
func (x Rat) Inv() (Rat, error) {
	if x.IsZero() {
		return Rat{}, ratErrorf(opInv, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Inv(x.val())), nil
}

// Floor returns the greatest integer ≤ x.
func (x Rat) Floor() Rat {
	v := x.val()
	if v.IsInt() {
		return FromBigRat(v)
	}
	// Euclidean division with a positive divisor rounds toward -inf.
	q := new(big.Int).Div(v.Num(), v.Denom())

	return wrap(new(big.Rat).SetInt(q))
}

// Ceil returns the least integer ≥ x.
func (x Rat) Ceil() Rat {
	return x.Neg().Floor().Neg()
}

// Trunc returns x rounded toward zero.
func (x Rat) Trunc() Rat {
	v := x.val()
	if v.IsInt() {
		return FromBigRat(v)
	}
	q := new(big.Int).Quo(v.Num(), v.Denom())

	return wrap(new(big.Rat).SetInt(q))
}

// Sum returns the sum of xs; the empty sum is 0.
func Sum(xs ...Rat) Rat {
	acc := new(big.Rat)
	for _, x := range xs {
		acc.Add(acc, x.val())
	}

	return wrap(acc)
}

// Product returns the product of xs; the empty product is 1.
func Product(xs ...Rat) Rat {
	acc := big.NewRat(1, 1)
	for _, x := range xs {
		acc.Mul(acc, x.val())
	}

	return wrap(acc)
}

// Dot returns Σ a[i]*b[i] over the common prefix of a and b.
// Callers validate lengths; Dot never fails.
func Dot(a, b []Rat) Rat {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	acc := new(big.Rat)
	tmp := new(big.Rat)
	for i := 0; i < n; i++ {
		if a[i].IsZero() || b[i].IsZero() {
			continue
		}
		tmp.Mul(a[i].val(), b[i].val())
		acc.Add(acc, tmp)
	}

	return wrap(acc)
}

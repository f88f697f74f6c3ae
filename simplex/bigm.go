// SPDX-License-Identifier: MIT

package simplex

import (
	"strings"

	"github.com/katalvlaran/lvlexact/rational"
)

// BigM is the exact number Big·M + Small, where M is larger than any
// rational the problem can produce. Ordering is lexicographic on (Big, Small).
// The zero value is 0.
type BigM struct {
	Big   rational.Rat
	Small rational.Rat
}

// M returns 1·M.
func M() BigM { return BigM{Big: rational.One()} }

// Real returns the BigM with no M component.
func Real(x rational.Rat) BigM { return BigM{Small: x} }

// Add returns x + y.
func (x BigM) Add(y BigM) BigM {
	return BigM{Big: x.Big.Add(y.Big), Small: x.Small.Add(y.Small)}
}

// Sub returns x − y.
func (x BigM) Sub(y BigM) BigM {
	return BigM{Big: x.Big.Sub(y.Big), Small: x.Small.Sub(y.Small)}
}

// Neg returns −x.
func (x BigM) Neg() BigM {
	return BigM{Big: x.Big.Neg(), Small: x.Small.Neg()}
}

// Scale returns a·x for a rational a. Products of two M terms never occur in
// the tableau, so there is no BigM·BigM.
func (x BigM) Scale(a rational.Rat) BigM {
	return BigM{Big: x.Big.Mul(a), Small: x.Small.Mul(a)}
}

// Cmp compares x and y lexicographically and returns -1, 0 or +1.
func (x BigM) Cmp(y BigM) int {
	if c := x.Big.Cmp(y.Big); c != 0 {
		return c
	}

	return x.Small.Cmp(y.Small)
}

// Sign returns the sign of x.
func (x BigM) Sign() int {
	if s := x.Big.Sign(); s != 0 {
		return s
	}

	return x.Small.Sign()
}

// IsZero reports whether both parts are zero.
func (x BigM) IsZero() bool { return x.Big.IsZero() && x.Small.IsZero() }

// Rat returns the Small part and true when x has no M component.
func (x BigM) Rat() (rational.Rat, bool) {
	if !x.Big.IsZero() {
		return rational.Rat{}, false
	}

	return x.Small, true
}

// String renders x as "M", "-M", "3M+2", "-1/2M-1" or a plain rational.
func (x BigM) String() string {
	if x.Big.IsZero() {
		return x.Small.String()
	}
	var sb strings.Builder
	switch {
	case x.Big.IsOne():
		sb.WriteString("M")
	case x.Big.Neg().IsOne():
		sb.WriteString("-M")
	default:
		sb.WriteString(x.Big.String())
		sb.WriteString("M")
	}
	if x.Small.Sign() > 0 {
		sb.WriteString("+")
	}
	if !x.Small.IsZero() {
		sb.WriteString(x.Small.String())
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT
// Package rational: ordering and predicates.

package rational

// Cmp compares x and y and returns -1 if x < y, 0 if x == y, +1 if x > y.
// Rat is totally ordered.
func (x Rat) Cmp(y Rat) int {
	return x.val().Cmp(y.val())
}

// Equal reports whether x == y.
func (x Rat) Equal(y Rat) bool {
	return x.Cmp(y) == 0
}

// Less reports whether x < y.
func (x Rat) Less(y Rat) bool {
	return x.Cmp(y) < 0
}

// Sign returns -1, 0 or +1.
func (x Rat) Sign() int {
	return x.val().Sign()
}

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool {
	return x.v == nil || x.v.Sign() == 0
}

// IsOne reports whether x == 1.
func (x Rat) IsOne() bool {
	v := x.val()
	return v.IsInt() && v.Num().IsInt64() && v.Num().Int64() == 1
}

// IsInt reports whether the denominator of x is 1.
func (x Rat) IsInt() bool {
	return x.val().IsInt()
}

// Min returns the smaller of x and y (x on ties).
func Min(x, y Rat) Rat {
	if y.Less(x) {
		return y
	}

	return x
}

// Max returns the larger of x and y (x on ties).
func Max(x, y Rat) Rat {
	if x.Less(y) {
		return y
	}

	return x
}

// SPDX-License-Identifier: MIT
// Package rational: exact conversions to and from machine numbers.
//
// Policy: a conversion either round-trips exactly or fails with
// ErrPrecisionLoss. Nothing in this file rounds.

package rational

import (
	"math"
	"math/big"
)

// Int64 returns x as an int64.
//
// Errors:
//   - ErrPrecisionLoss if x is not an integer or does not fit in int64.
func (x Rat) Int64() (int64, error) {
	v := x.val()
	if !v.IsInt() || !v.Num().IsInt64() {
		return 0, ratErrorf(opInt64, ErrPrecisionLoss)
	}

	return v.Num().Int64(), nil
}

// Float64 returns x as a float64.
//
// Errors:
//   - ErrPrecisionLoss if x has no exact float64 representation (e.g. 1/3,
//     or magnitudes beyond the float64 range).
func (x Rat) Float64() (float64, error) {
	f, exact := x.val().Float64()
	if !exact || math.IsInf(f, 0) {
		return 0, ratErrorf(opFloat64, ErrPrecisionLoss)
	}

	return f, nil
}

// FromFloat64 returns the exact rational value of f. Every finite float64 is
// a dyadic rational, so the conversion is exact: 0.1 becomes
// 3602879701896397/36028797018963968, not 1/10. Use Parse("0.1") for the
// decimal reading.
//
// Errors:
//   - ErrPrecisionLoss if f is NaN or ±Inf.
func FromFloat64(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, ratErrorf(opFromF64, ErrPrecisionLoss)
	}
	r := new(big.Rat)
	r.SetFloat64(f) // non-nil for finite f

	return wrap(r), nil
}

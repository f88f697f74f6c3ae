// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Every failure returned by this package matches one of these sentinels via
// errors.Is. Messages are prefixed with "rational:" for easy grepping.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Div, Inv and constructors whose
	// denominator is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrPrecisionLoss indicates that a conversion could not be performed
	// exactly (non-integer to int64, value not representable as float64,
	// NaN/Inf input, or decimal text that implies truncation such as "0.33...").
	ErrPrecisionLoss = errors.New("rational: exact conversion impossible")

	// ErrSyntax indicates malformed rational or decimal text.
	ErrSyntax = errors.New("rational: invalid number syntax")

	// ErrExponentRange indicates well-formed scientific notation whose
	// exponent magnitude exceeds MaxDecimalExponent.
	ErrExponentRange = errors.New("rational: exponent out of range")
)

// Operation tags for uniform error wrapping.
const (
	opNew     = "New"
	opFromBig = "FromBig"
	opDiv     = "Div"
	opInv     = "Inv"
	opParse   = "Parse"
	opInt64   = "Int64"
	opFloat64 = "Float64"
	opFromF64 = "FromFloat64"
	opJSON    = "UnmarshalJSON"
)

// ratErrorf wraps err with an operation tag, keeping errors.Is intact.
func ratErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT
// Package rational: structured-record encoding.
//
// A Rat travels as {"num":"<int>","den":"<int>"} with both parts as decimal
// strings, so arbitrarily large values survive JSON tooling that would
// otherwise squeeze numbers through float64. Decoding also accepts a JSON
// string in any form Parse understands, and a bare JSON number literal, which
// is read as exact decimal text.

package rational

import (
	"bytes"
	"encoding/json"
	"math/big"
)

// Record is the transport form of a Rat.
type Record struct {
	Num string `json:"num"`
	Den string `json:"den"`
}

// ToRecord returns the numerator/denominator record of x.
func (x Rat) ToRecord() Record {
	v := x.val()
	return Record{Num: v.Num().String(), Den: v.Denom().String()}
}

// FromRecord rebuilds a Rat from its record, normalizing it.
//
// Errors:
//   - ErrSyntax if either part is not a base-10 integer.
//   - ErrDivisionByZero if Den is zero.
func FromRecord(rec Record) (Rat, error) {
	num, ok := new(big.Int).SetString(rec.Num, 10)
	if !ok {
		return Rat{}, ratErrorf(opJSON, ErrSyntax)
	}
	den, ok := new(big.Int).SetString(rec.Den, 10)
	if !ok {
		return Rat{}, ratErrorf(opJSON, ErrSyntax)
	}
	if den.Sign() == 0 {
		return Rat{}, ratErrorf(opJSON, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).SetFrac(num, den)), nil
}

// MarshalJSON implements json.Marshaler.
func (x Rat) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.ToRecord())
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Rat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ratErrorf(opJSON, ErrSyntax)
	}

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '{':
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return ratErrorf(opJSON, ErrSyntax)
		}
		r, err := FromRecord(rec)
		if err != nil {
			return err
		}
		*x = r
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ratErrorf(opJSON, ErrSyntax)
		}
		r, err := Parse(s)
		if err != nil {
			return err
		}
		*x = r
	default:
		r, err := Parse(string(data))
		if err != nil {
			return err
		}
		*x = r
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (x Rat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (x *Rat) UnmarshalText(text []byte) error {
	r, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = r

	return nil
}

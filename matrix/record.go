// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvlexact/rational"
)

// Record is the transport form of a matrix. Rows and Cols are explicit so
// zero-sized shapes (r×0) survive a round trip; each entry encodes as a
// {"num","den"} pair.
type Record struct {
	Rows int              `json:"rows"`
	Cols int              `json:"cols"`
	Data [][]rational.Rat `json:"data"`
}

// ToRecord returns the record form of m.
func (m *Dense) ToRecord() Record {
	return Record{Rows: m.r, Cols: m.c, Data: m.ToRows()}
}

// FromRecord rebuilds a matrix from its record. The shape and every row length
// are checked before the buffer is allocated.
//
// Errors:
//   - ErrBadShape for negative dimensions or Rows*Cols > MaxEntries.
//   - ErrDimensionMismatch if Data does not have Rows rows of Cols entries.
func FromRecord(rec Record) (*Dense, error) {
	if err := checkShape(rec.Rows, rec.Cols); err != nil {
		return nil, matrixErrorf(opFromRecord, err)
	}
	if len(rec.Data) != rec.Rows {
		return nil, matrixErrorf(opFromRecord,
			fmt.Errorf("%d data rows, want %d: %w", len(rec.Data), rec.Rows, ErrDimensionMismatch))
	}
	if _, err := rowsShape(rec.Rows, rec.Cols, func(i int) int { return len(rec.Data[i]) }); err != nil {
		return nil, matrixErrorf(opFromRecord, err)
	}
	m := &Dense{r: rec.Rows, c: rec.Cols, data: make([]rational.Rat, rec.Rows*rec.Cols)}
	for i, row := range rec.Data {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// MarshalJSON implements json.Marshaler.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToRecord())
}

// UnmarshalJSON implements json.Unmarshaler. Entry errors from the rational
// decoder (rational.ErrSyntax, rational.ErrDivisionByZero) pass through.
func (m *Dense) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return matrixErrorf(opJSON, err)
	}
	out, err := FromRecord(rec)
	if err != nil {
		return matrixErrorf(opJSON, err)
	}
	*m = *out

	return nil
}

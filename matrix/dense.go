// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Entries are rational.Rat values. A Rat is immutable, so copying an entry
// between matrices shares nothing mutable and Clone is a flat slice copy.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlexact/rational"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxCol  = "Col"
	ctxSwap = "SwapRows"
	ctxScal = "ScaleRow"
	ctxAxpy = "AddScaledRow"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// MaxEntries caps r*c for every constructor. Larger shapes are rejected with
// ErrBadShape instead of overflowing the index arithmetic or the allocator.
const MaxEntries = 1 << 28

// checkShape reports whether an r×c buffer may be allocated.
func checkShape(r, c int) error {
	if r < 0 || c < 0 {
		return fmt.Errorf("%dx%d: %w", r, c, ErrBadShape)
	}
	if c != 0 && r > MaxEntries/c {
		return fmt.Errorf("%dx%d exceeds %d entries: %w", r, c, MaxEntries, ErrBadShape)
	}

	return nil
}

// Dense is a concrete row-major rational matrix.
//   - r, c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not usable; construct with NewDense or a NewFrom* helper.
type Dense struct {
	r, c int
	data []rational.Rat
}

// NewDense allocates an r×c matrix of zeros.
//
// Errors:
//   - ErrBadShape if r < 0, c < 0 or r*c > MaxEntries.
//
// Complexity: O(r*c) time and space.
func NewDense(r, c int) (*Dense, error) {
	if err := checkShape(r, c); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	// rational.Rat{} is exactly zero, so make() is all the init we need.
	return &Dense{r: r, c: c, data: make([]rational.Rat, r*c)}, nil
}

// rowsShape validates r rows of c entries (rowLen reports each row's length)
// before anything is allocated.
func rowsShape(r, c int, rowLen func(int) int) (int, error) {
	for i := range r {
		if n := rowLen(i); n != c {
			return 0, fmt.Errorf("row %d has %d entries, want %d: %w", i, n, c, ErrDimensionMismatch)
		}
	}
	if err := checkShape(r, c); err != nil {
		return 0, err
	}

	return c, nil
}

// NewFromRows builds a matrix from row slices, copying them.
// An empty outer slice yields a 0×0 matrix; rows of length zero yield r×0.
//
// Errors:
//   - ErrDimensionMismatch if the rows are ragged.
//   - ErrBadShape if r*c > MaxEntries.
func NewFromRows(rows [][]rational.Rat) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c, err := rowsShape(r, len(rows[0]), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	m := &Dense{r: r, c: c, data: make([]rational.Rat, r*c)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewFromInts builds a matrix of integer entries.
//
// Errors:
//   - ErrDimensionMismatch if the rows are ragged.
//   - ErrBadShape if r*c > MaxEntries.
func NewFromInts(rows [][]int64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c, err := rowsShape(r, len(rows[0]), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, matrixErrorf(opFromInts, err)
	}
	m := &Dense{r: r, c: c, data: make([]rational.Rat, r*c)}
	for i, row := range rows {
		for j, v := range row {
			m.data[i*c+j] = rational.FromInt(v)
		}
	}

	return m, nil
}

// NewFromStrings builds a matrix from text entries in any form rational.Parse
// accepts ("3", "-1/2", "0.25", "0.(3)").
//
// Errors:
//   - ErrDimensionMismatch if the rows are ragged.
//   - ErrBadShape if r*c > MaxEntries.
//   - rational.ErrSyntax / rational.ErrDivisionByZero / rational.ErrPrecisionLoss
//     for a bad entry (wrapped with its coordinates).
func NewFromStrings(rows [][]string) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c, err := rowsShape(r, len(rows[0]), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, matrixErrorf(opFromStrings, err)
	}
	m := &Dense{r: r, c: c, data: make([]rational.Rat, r*c)}
	for i, row := range rows {
		for j, s := range row {
			v, err := rational.Parse(s)
			if err != nil {
				return nil, matrixErrorf(opFromStrings, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix. Identity(0) is the 0×0 matrix.
//
// Errors:
//   - ErrBadShape if n < 0.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := rational.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// indexOf maps (i,j) to its flat offset, or reports a bad index.
func (m *Dense) indexOf(i, j int) (int, bool) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, false
	}

	return i*m.c + j, true
}

// At returns the element at (i, j).
//
// Errors:
//   - ErrOutOfRange for a bad index.
func (m *Dense) At(i, j int) (rational.Rat, error) {
	k, ok := m.indexOf(i, j)
	if !ok {
		return rational.Rat{}, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[k], nil
}

// Set assigns v at (i, j).
//
// Errors:
//   - ErrOutOfRange for a bad index.
func (m *Dense) Set(i, j int, v rational.Rat) error {
	k, ok := m.indexOf(i, j)
	if !ok {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[k] = v

	return nil
}

// Clone returns a deep copy as a Matrix.
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense returns a deep copy with its concrete type.
func (m *Dense) CloneDense() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]rational.Rat, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange if i is not a valid row.
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make(Vector, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
//
// Errors:
//   - ErrOutOfRange if j is not a valid column.
func (m *Dense) Col(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns the entries as freshly allocated row slices.
func (m *Dense) ToRows() [][]rational.Rat {
	out := make([][]rational.Rat, m.r)
	for i := range out {
		out[i] = make([]rational.Rat, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether o has the same shape and exactly equal entries.
// A nil o is never equal.
func (m *Dense) Equal(o Matrix) bool {
	if o == nil || m.r != o.Rows() || m.c != o.Cols() {
		return false
	}
	if d, ok := o.(*Dense); ok {
		for k := range m.data {
			if !m.data[k].Equal(d.data[k]) {
				return false
			}
		}

		return true
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, err := o.At(i, j)
			if err != nil || !m.data[i*m.c+j].Equal(v) {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line, entries in lowest terms:
//
//	[1, -1/2]
//	[0, 3]
//
// A matrix with no rows renders as the empty string.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/lvlexact/rational"
)

// Mode selects how far elimination goes.
type Mode int

const (
	// Reduced eliminates every pivot column above and below the pivot,
	// producing the reduced row-echelon form (Gauss–Jordan).
	Reduced Mode = iota

	// Echelon eliminates only below each pivot, producing a row-echelon form
	// with unit pivots. Rank, pivots and determinant are the same as in
	// Reduced mode.
	Echelon
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Reduced:
		return "reduced"
	case Echelon:
		return "echelon"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Policy decides what Solve returns for a consistent system with free
// variables.
type Policy int

const (
	// RejectUnderdetermined fails with ErrUnderdetermined.
	RejectUnderdetermined Policy = iota

	// FreeVariablesZero returns the particular solution with every free
	// variable set to zero.
	FreeVariablesZero
)

// Defaults.
const (
	// DefaultMode is full Gauss–Jordan reduction.
	DefaultMode = Reduced

	// DefaultPolicy rejects underdetermined systems.
	DefaultPolicy = RejectUnderdetermined

	// DefaultPivotColumns (0) searches pivots in every column.
	DefaultPivotColumns = 0
)

// PivotFunc observes one pivot: step counts pivots from 0, (row, col) is the
// pivot position after the swap, pivot is its value before normalization.
type PivotFunc func(step, row, col int, pivot rational.Rat)

// Option configures elimination via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// operation runs.
type Option func(*Options)

// Options holds the parameters gathered from Option values.
type Options struct {
	// Mode selects reduced or plain row-echelon form.
	Mode Mode

	// PivotColumns, if > 0, restricts the pivot search to the first k
	// columns; the remaining columns are carried along by the row
	// operations. 0 means every column.
	PivotColumns int

	// Underdetermined is the free-variable policy used by Solve and
	// SolveMatrix.
	Underdetermined Policy

	// OnPivot is called once per pivot.
	OnPivot PivotFunc

	err error
}

// DefaultOptions returns Options with documented defaults and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Mode:            DefaultMode,
		PivotColumns:    DefaultPivotColumns,
		Underdetermined: DefaultPolicy,
		OnPivot:         func(int, int, int, rational.Rat) {},
	}
}

// gatherOptions applies opts over the defaults and returns the first
// recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// WithMode selects Reduced or Echelon output.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Reduced && m != Echelon {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithPivotColumns restricts the pivot search to the first k columns.
//
//	k > 0: limit to k columns (k larger than the column count means all)
//	k == 0: no limit
//	k < 0: ErrOptionViolation
func WithPivotColumns(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: PivotColumns cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.PivotColumns = k
	}
}

// WithUnderdetermined sets the free-variable policy for Solve.
func WithUnderdetermined(p Policy) Option {
	return func(o *Options) {
		if p != RejectUnderdetermined && p != FreeVariablesZero {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Underdetermined = p
	}
}

// WithOnPivot registers a pivot observer. A nil fn is ignored.
func WithOnPivot(fn PivotFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPivot = fn
		}
	}
}

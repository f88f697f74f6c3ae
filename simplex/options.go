// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"io"
	"log/slog"
)

// Defaults.
const (
	// DefaultMaxIterations (0) puts no cap on pivots per LP. Bland's rule
	// guarantees termination.
	DefaultMaxIterations = 0

	// DefaultMaxNodes (0) puts no cap on branch-and-bound nodes.
	DefaultMaxNodes = 0
)

// PivotFunc observes one simplex pivot: iter counts pivots from 0, (row, col)
// is the pivot position in the tableau.
type PivotFunc func(iter, row, col int)

// NodeFunc observes one branch-and-bound node after its relaxation is solved.
// path is "root", "root.L", "root.L.R" and so on; sol is nil when err is set.
// It may be called from several goroutines at once.
type NodeFunc func(path string, sol *Solution, err error)

// Option configures Solve, SolveInteger and AssignFleet.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// operation runs.
type Option func(*Options)

// Options holds the parameters gathered from Option values.
type Options struct {
	// MaxIterations caps pivots per LP; 0 means no cap.
	MaxIterations int

	// MaxNodes caps branch-and-bound nodes; 0 means no cap.
	MaxNodes int

	// OnPivot is called once per pivot.
	OnPivot PivotFunc

	// OnNode is called once per branch-and-bound node.
	OnNode NodeFunc

	// Logger receives debug records per pivot and node.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with documented defaults, no-op hooks and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		MaxNodes:      DefaultMaxNodes,
		OnPivot:       func(int, int, int) {},
		OnNode:        func(string, *Solution, error) {},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
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
	o.Logger = o.Logger.With(slog.String("component", "simplex"))

	return o, o.err
}

// WithMaxIterations caps the pivots of every LP solve.
//
//	k > 0: at most k pivots, then ErrIterationLimit
//	k == 0: no cap
//	k < 0: ErrOptionViolation
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxIterations = k
	}
}

// WithMaxNodes caps the relaxations solved by SolveInteger, root included.
//
//	k > 0: at most k nodes, then ErrNodeLimit
//	k == 0: no cap
//	k < 0: ErrOptionViolation
func WithMaxNodes(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxNodes = k
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

// WithOnNode registers a branch-and-bound node observer. A nil fn is ignored.
func WithOnNode(fn NodeFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNode = fn
		}
	}
}

// WithLogger attaches a structured logger.
//
//	l == nil: ErrOptionViolation
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

// Sentinel errors reported in per-job slots.
var (
	// ErrUnknownOp is reported for a Job whose Op is not one of the Op* values.
	ErrUnknownOp = errors.New("batch: unknown operation")

	// ErrJobPanicked is reported when a job function panicked; the panic value
	// is included in the message.
	ErrJobPanicked = errors.New("batch: job panicked")

	// ErrNilJob is reported for a Job without a coefficient matrix.
	ErrNilJob = errors.New("batch: job has no matrix")
)

// Operation tags used in error wrapping.
const (
	opMap       = "Map"
	opRun       = "Run"
	opSolveEach = "SolveEach"
)

// batchErrorf wraps err with a stable operation tag: "<tag>: <err>".
func batchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

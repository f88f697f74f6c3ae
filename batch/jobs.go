// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlexact/gauss"
	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
)

// Op names the elimination-engine entry point a Job runs.
type Op int

const (
	// OpSolve solves A·x = B.
	OpSolve Op = iota + 1
	// OpInvert computes A⁻¹.
	OpInvert
	// OpDeterminant computes det(A).
	OpDeterminant
	// OpRowReduce computes the reduced row-echelon form of A.
	OpRowReduce
	// OpRank computes rank(A).
	OpRank
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case OpSolve:
		return "solve"
	case OpInvert:
		return "invert"
	case OpDeterminant:
		return "determinant"
	case OpRowReduce:
		return "rowReduce"
	case OpRank:
		return "rank"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Job is one independent problem descriptor.
type Job struct {
	// Op selects the operation.
	Op Op
	// A is the coefficient matrix (required).
	A matrix.Matrix
	// B is the right-hand side; used by OpSolve only.
	B matrix.Vector
	// Options are passed through to the gauss call.
	Options []gauss.Option
}

// Result is one job's outcome. Exactly one of the value fields is meaningful,
// chosen by Op; Err is non-nil on failure.
type Result struct {
	Op          Op
	Solution    matrix.Vector // OpSolve
	Matrix      *matrix.Dense // OpInvert, OpRowReduce
	Determinant rational.Rat  // OpDeterminant
	Rank        int           // OpRank
	Err         error
}

// Run executes jobs on a pool built from opts. See Pool.Run.
func Run(ctx context.Context, jobs []Job, opts ...Option) ([]Result, error) {
	return NewPool(opts...).Run(ctx, jobs)
}

// Run executes every job and returns one Result per job in submission order.
// Job failures (ErrNilJob, ErrUnknownOp, gauss sentinels, ErrJobPanicked)
// land in the job's Result.Err. The returned error is only batch-level
// cancellation.
func (p *Pool) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	outs, err := Map(ctx, p, jobs, func(_ context.Context, j Job) (Result, error) {
		return execute(j)
	})
	if err != nil {
		return nil, batchErrorf(opRun, err)
	}

	results := make([]Result, len(outs))
	failed := 0
	for i, o := range outs {
		results[i] = o.Value
		results[i].Op = jobs[i].Op
		if o.Err != nil {
			results[i].Err = o.Err
			failed++
		}
	}
	p.logger.LogAttrs(ctx, slog.LevelInfo, "batch done",
		slog.Int("jobs", len(jobs)),
		slog.Int("failed", failed),
		slog.Int("workers", p.workers),
	)

	return results, nil
}

// execute dispatches a single job to the elimination engine.
func execute(j Job) (Result, error) {
	res := Result{Op: j.Op}
	if matrix.ValidateNotNil(j.A) != nil {
		return res, fmt.Errorf("%s: %w", j.Op, ErrNilJob)
	}

	var err error
	switch j.Op {
	case OpSolve:
		res.Solution, err = gauss.Solve(j.A, j.B, j.Options...)
	case OpInvert:
		res.Matrix, err = gauss.Inverse(j.A, j.Options...)
	case OpDeterminant:
		res.Determinant, err = gauss.Determinant(j.A, j.Options...)
	case OpRowReduce:
		res.Matrix, err = gauss.RowReduce(j.A, j.Options...)
	case OpRank:
		res.Rank, err = gauss.Rank(j.A, j.Options...)
	default:
		err = fmt.Errorf("%s: %w", j.Op, ErrUnknownOp)
	}

	return res, err
}

// SolveEach solves A·x = b for every b on a pool built from opts.
func SolveEach(ctx context.Context, a matrix.Matrix, bs []matrix.Vector, opts ...Option) ([]Outcome[matrix.Vector], error) {
	return NewPool(opts...).SolveEach(ctx, a, bs)
}

// SolveEach solves A·x = b for every right-hand side, in parallel, against
// one shared coefficient matrix. Each slot carries its own solution or error
// (e.g. ErrNoSolution for one inconsistent b, ErrDimensionMismatch for a b of
// the wrong length).
func (p *Pool) SolveEach(ctx context.Context, a matrix.Matrix, bs []matrix.Vector, gopts ...gauss.Option) ([]Outcome[matrix.Vector], error) {
	outs, err := Map(ctx, p, bs, func(_ context.Context, b matrix.Vector) (matrix.Vector, error) {
		return gauss.Solve(a, b, gopts...)
	})
	if err != nil {
		return nil, batchErrorf(opSolveEach, err)
	}

	return outs, nil
}

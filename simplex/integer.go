// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvlexact/batch"
	"github.com/katalvlaran/lvlexact/rational"
)

const rootPath = "root"

// SolveInteger finds an optimal solution of p with every variable integral,
// by branch-and-bound over LP relaxations.
//
// Implementation:
//   - Stage 1: Solve the relaxation of the node. An infeasible relaxation
//     closes the node.
//   - Stage 2: If its value is strictly worse than the best integral
//     solution found so far (shared by all branches), close the node.
//   - Stage 3: If every variable is integral, record it. Otherwise branch on
//     the first fractional variable v: left adds x ≤ ⌊v⌋ (x = 0 when ⌊v⌋ is
//     0), right adds x ≥ ⌊v⌋+1. Both branches run concurrently on a
//     batch.Pool.
//   - Stage 4: A node returns the better of its branches; on a tie the left
//     one wins, so the result does not depend on scheduling.
//
// The returned Solution.Iterations is the total pivot count over every node.
//
// Errors:
//   - ErrInfeasible when no integral point satisfies the constraints.
//   - ErrNodeLimit when WithMaxNodes is exceeded.
//   - Any error of Solve on the root relaxation.
//   - ctx.Err() (wrapped) when ctx ends first.
func SolveInteger(ctx context.Context, p *Problem, opts ...Option) (*Solution, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, simplexErrorf(opSolveInteger, err)
	}
	if p == nil {
		return nil, simplexErrorf(opSolveInteger, fmt.Errorf("%w: nil problem", ErrBadProblem))
	}

	s := &search{
		o:    o,
		pool: batch.NewPool(batch.WithWorkers(2), batch.WithLogger(o.Logger)),
		inc:  incumbent{sense: p.Sense},
	}
	best, err := s.node(ctx, p, rootPath)
	if err != nil {
		return nil, simplexErrorf(opSolveInteger, err)
	}
	if best == nil {
		return nil, simplexErrorf(opSolveInteger, ErrInfeasible)
	}

	out := *best
	out.Iterations = int(s.iters.Load())
	o.Logger.Info("integer solve done",
		slog.Int64("nodes", s.nodes.Load()),
		slog.Int("iterations", out.Iterations),
		slog.String("value", out.Value.String()),
	)

	return &out, nil
}

// search is the state shared by every node of one SolveInteger call.
type search struct {
	o     Options
	pool  *batch.Pool
	inc   incumbent
	nodes atomic.Int64
	iters atomic.Int64
}

// branch is one child problem with its node path.
type branch struct {
	p    *Problem
	path string
}

// node returns the best integral solution in the subtree rooted at p, or nil
// when the subtree has none worth keeping.
func (s *search) node(ctx context.Context, p *Problem, path string) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n := s.nodes.Add(1); s.o.MaxNodes > 0 && n > int64(s.o.MaxNodes) {
		return nil, fmt.Errorf("%s: %w", path, ErrNodeLimit)
	}

	sol, err := solveLP(p, s.o)
	s.o.OnNode(path, sol, err)
	if errors.Is(err, ErrInfeasible) {
		s.o.Logger.Debug("node infeasible", slog.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.iters.Add(int64(sol.Iterations))

	if s.inc.prunes(sol.Value) {
		s.o.Logger.Debug("node pruned", slog.String("path", path), slog.String("bound", sol.Value.String()))
		return nil, nil
	}
	i := firstFractional(sol.Variables)
	if i < 0 {
		s.inc.offer(sol)
		s.o.Logger.Debug("node integral", slog.String("path", path), slog.String("value", sol.Value.String()))
		return sol, nil
	}

	floor := sol.Variables[i].Floor()
	leftSign := LessEq
	if floor.IsZero() {
		leftSign = Equal
	}
	children := []branch{
		{p: p.withBound(i, leftSign, floor), path: path + ".L"},
		{p: p.withBound(i, GreaterEq, floor.Add(rational.One())), path: path + ".R"},
	}
	s.o.Logger.Debug("node branched",
		slog.String("path", path),
		slog.Int("var", i),
		slog.String("value", sol.Variables[i].String()),
	)

	outs, err := batch.Map(ctx, s.pool, children, func(ctx context.Context, b branch) (*Solution, error) {
		return s.node(ctx, b.p, b.path)
	})
	if err != nil {
		return nil, err
	}
	for _, out := range outs {
		if out.Err != nil {
			return nil, out.Err
		}
	}

	return pick(p.Sense, outs[0].Value, outs[1].Value), nil
}

// incumbent is the best integral solution seen by any branch.
type incumbent struct {
	mu    sync.Mutex
	best  *Solution
	sense Sense
}

// prunes reports whether a relaxation bound v is strictly worse than the
// incumbent.
func (in *incumbent) prunes(v rational.Rat) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.best != nil && better(in.sense, in.best.Value, v)
}

// offer records s if it strictly improves the incumbent.
func (in *incumbent) offer(s *Solution) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.best == nil || better(in.sense, s.Value, in.best.Value) {
		in.best = s
	}
}

// better reports whether a is strictly better than b under sense.
func better(sense Sense, a, b rational.Rat) bool {
	if sense == Maximize {
		return a.Cmp(b) > 0
	}

	return a.Cmp(b) < 0
}

// pick returns the better of two optional solutions, l on a tie.
func pick(sense Sense, l, r *Solution) *Solution {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case better(sense, r.Value, l.Value):
		return r
	default:
		return l
	}
}

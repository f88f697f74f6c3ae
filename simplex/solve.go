// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"log/slog"
)

// Solve finds an optimal vertex of the linear program p with the big-M
// simplex method.
//
// Implementation:
//   - Stage 1: Normalize. Rows with a negative RHS are negated and their
//     relation flipped; ≤ rows get a slack, ≥ rows a surplus and an
//     artificial, = rows an artificial. Artificials cost M.
//   - Stage 2: Pivot with Bland's rule: the lowest-index column with a
//     negative reduced cost enters; the minimum-ratio row leaves, ties to
//     the lowest basic index. The rule cannot cycle.
//   - Stage 3: At optimality, an artificial basic at a positive level means
//     the constraints are infeasible.
//
// Maximization is solved as minimization of the negated objective; the
// reported Value is always the objective of p at the solution.
//
// Errors:
//   - ErrBadProblem for no variables or an unknown sense or sign.
//   - ErrUnbounded when the objective improves without limit.
//   - ErrInfeasible when no point satisfies the constraints.
//   - ErrIterationLimit when WithMaxIterations is exceeded.
//   - ErrOptionViolation for an invalid option.
func Solve(p *Problem, opts ...Option) (*Solution, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, simplexErrorf(opSolve, err)
	}
	sol, err := solveLP(p, o)
	if err != nil {
		return nil, simplexErrorf(opSolve, err)
	}

	return sol, nil
}

// solveLP runs the simplex loop with already gathered options.
func solveLP(p *Problem, o Options) (*Solution, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", ErrBadProblem)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	t := newTableau(p)
	iter := 0
	for {
		j, d := t.entering()
		if j < 0 {
			break
		}
		r := t.leaving(j)
		if r < 0 {
			return nil, fmt.Errorf("column %d: %w", j, ErrUnbounded)
		}
		if o.MaxIterations > 0 && iter >= o.MaxIterations {
			return nil, fmt.Errorf("after %d pivots: %w", iter, ErrIterationLimit)
		}
		o.OnPivot(iter, r, j)
		o.Logger.Debug("pivot",
			slog.Int("iter", iter),
			slog.Int("row", r),
			slog.Int("col", j),
			slog.String("reduced_cost", d.String()),
		)
		if err := t.pivot(r, j); err != nil {
			return nil, err
		}
		iter++
	}
	if t.infeasible() {
		return nil, ErrInfeasible
	}

	x := t.values()

	return &Solution{Variables: x, Value: p.Value(x), Iterations: iter}, nil
}

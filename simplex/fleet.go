// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
)

// FleetInput describes a ship-to-line assignment. Rows index lines, columns
// index ship types.
type FleetInput struct {
	// Rate[l][s] is the volume one ship of type s carries on line l.
	Rate *matrix.Dense
	// Cost[l][s] is the cost of running one ship of type s on line l.
	Cost *matrix.Dense
	// Demand[l] is the minimum volume line l must carry.
	Demand matrix.Vector
	// Ships[s] is the number of ships of type s; every ship is assigned.
	Ships matrix.Vector
	// Available[l][s] == false forbids type s on line l. Nil allows every
	// pair.
	Available [][]bool
}

// Model builds the integer program of the assignment. Variable l·S+s is the
// number of ships of type s on line l, for S ship types.
//
//	minimize   Σ Cost[l][s]·x[l][s]
//	subject to Σₛ Rate[l][s]·x[l][s] ≥ Demand[l]   for every line l
//	           Σₗ x[l][s] = Ships[s]               for every type s
//	           x[l][s] = 0                         where !Available[l][s]
//
// Errors:
//   - matrix.ErrNilMatrix for a nil Rate or Cost.
//   - ErrDimensionMismatch when Rate, Cost, Demand, Ships and Available
//     disagree on the number of lines or ship types.
func (in FleetInput) Model() (*Problem, error) {
	if err := matrix.ValidateSameShape(in.Rate, in.Cost); err != nil {
		return nil, err
	}
	lines, ships := in.Rate.Shape()
	if len(in.Demand) != lines {
		return nil, fmt.Errorf("%d demands for %d lines: %w", len(in.Demand), lines, ErrDimensionMismatch)
	}
	if len(in.Ships) != ships {
		return nil, fmt.Errorf("%d ship counts for %d types: %w", len(in.Ships), ships, ErrDimensionMismatch)
	}
	if in.Available != nil {
		if len(in.Available) != lines {
			return nil, fmt.Errorf("availability has %d rows for %d lines: %w", len(in.Available), lines, ErrDimensionMismatch)
		}
		for l, row := range in.Available {
			if len(row) != ships {
				return nil, fmt.Errorf("availability row %d has %d entries for %d types: %w", l, len(row), ships, ErrDimensionMismatch)
			}
		}
	}

	n := lines * ships
	p := &Problem{Objective: make([]rational.Rat, n), Sense: Minimize}
	for l := 0; l < lines; l++ {
		coeffs := make([]rational.Rat, n)
		for s := 0; s < ships; s++ {
			p.Objective[l*ships+s], _ = in.Cost.At(l, s)
			coeffs[l*ships+s], _ = in.Rate.At(l, s)
		}
		p.Constraints = append(p.Constraints, Constraint{Coeffs: coeffs, Sign: GreaterEq, RHS: in.Demand[l]})
	}
	for s := 0; s < ships; s++ {
		coeffs := make([]rational.Rat, n)
		for l := 0; l < lines; l++ {
			coeffs[l*ships+s] = rational.One()
		}
		p.Constraints = append(p.Constraints, Constraint{Coeffs: coeffs, Sign: Equal, RHS: in.Ships[s]})
	}
	for l, row := range in.Available {
		for s, ok := range row {
			if !ok {
				p.Constraints = append(p.Constraints, Constraint{
					Coeffs: unit(n, l*ships+s),
					Sign:   Equal,
				})
			}
		}
	}

	return p, nil
}

// AssignFleet solves the assignment as an integer program and returns the
// lines×types allocation and its total cost.
//
// Errors:
//   - everything Model returns.
//   - ErrInfeasible when no integral assignment meets every demand.
//   - any SolveInteger error.
func AssignFleet(ctx context.Context, in FleetInput, opts ...Option) (*matrix.Dense, rational.Rat, error) {
	p, err := in.Model()
	if err != nil {
		return nil, rational.Rat{}, simplexErrorf(opAssignFleet, err)
	}
	sol, err := SolveInteger(ctx, p, opts...)
	if err != nil {
		return nil, rational.Rat{}, simplexErrorf(opAssignFleet, err)
	}

	lines, ships := in.Rate.Shape()
	alloc, err := matrix.NewDense(lines, ships)
	if err != nil {
		return nil, rational.Rat{}, simplexErrorf(opAssignFleet, err)
	}
	for l := 0; l < lines; l++ {
		for s := 0; s < ships; s++ {
			_ = alloc.Set(l, s, sol.Variables[l*ships+s])
		}
	}

	return alloc, sol.Value, nil
}

// unit returns the length-n vector with a 1 at index i.
func unit(n, i int) []rational.Rat {
	v := make([]rational.Rat, n)
	v[i] = rational.One()

	return v
}

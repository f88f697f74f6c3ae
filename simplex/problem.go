// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlexact/rational"
)

// Sense selects the optimization direction.
type Sense int

const (
	// Minimize the objective.
	Minimize Sense = iota
	// Maximize the objective.
	Maximize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "min"
	case Maximize:
		return "max"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Sign is the relation of a constraint.
type Sign int

const (
	// LessEq is Σ aⱼxⱼ ≤ b.
	LessEq Sign = iota - 1
	// Equal is Σ aⱼxⱼ = b.
	Equal
	// GreaterEq is Σ aⱼxⱼ ≥ b.
	GreaterEq
)

// String implements fmt.Stringer.
func (s Sign) String() string {
	switch s {
	case LessEq:
		return "<="
	case Equal:
		return "="
	case GreaterEq:
		return ">="
	default:
		return fmt.Sprintf("Sign(%d)", int(s))
	}
}

// flip mirrors the relation, as multiplying both sides by −1 does.
func (s Sign) flip() Sign { return -s }

// Constraint is one row Σ Coeffs[j]·xⱼ Sign RHS. Coeffs shorter than the
// problem's variable count are zero-padded.
type Constraint struct {
	Coeffs []rational.Rat
	Sign   Sign
	RHS    rational.Rat
}

// String renders the constraint as "[a, b] <= c".
func (c Constraint) String() string {
	parts := make([]string, len(c.Coeffs))
	for j, v := range c.Coeffs {
		parts[j] = v.String()
	}

	return "[" + strings.Join(parts, ", ") + "] " + c.Sign.String() + " " + c.RHS.String()
}

// Problem is a linear program over non-negative variables x ≥ 0.
//
// The variable count is the longest of Objective and every Constraint.Coeffs;
// shorter rows are zero-padded.
type Problem struct {
	Objective   []rational.Rat
	Sense       Sense
	Constraints []Constraint
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int {
	n := len(p.Objective)
	for _, c := range p.Constraints {
		if len(c.Coeffs) > n {
			n = len(c.Coeffs)
		}
	}

	return n
}

// Value evaluates the objective at x (missing entries count as 0).
func (p *Problem) Value(x []rational.Rat) rational.Rat {
	n := len(p.Objective)
	if len(x) < n {
		n = len(x)
	}

	return rational.Dot(p.Objective[:n], x[:n])
}

// Satisfies reports whether x ≥ 0 meets every constraint exactly.
func (p *Problem) Satisfies(x []rational.Rat) bool {
	for _, v := range x {
		if v.Sign() < 0 {
			return false
		}
	}
	for _, c := range p.Constraints {
		n := len(c.Coeffs)
		if len(x) < n {
			n = len(x)
		}
		lhs := rational.Dot(c.Coeffs[:n], x[:n])
		cmp := lhs.Cmp(c.RHS)
		switch c.Sign {
		case LessEq:
			if cmp > 0 {
				return false
			}
		case Equal:
			if cmp != 0 {
				return false
			}
		case GreaterEq:
			if cmp < 0 {
				return false
			}
		}
	}

	return true
}

// validate checks the enumerations and that there is at least one variable.
func (p *Problem) validate() error {
	if p.Sense != Minimize && p.Sense != Maximize {
		return fmt.Errorf("%w: unknown sense %d", ErrBadProblem, int(p.Sense))
	}
	for i, c := range p.Constraints {
		if c.Sign != LessEq && c.Sign != Equal && c.Sign != GreaterEq {
			return fmt.Errorf("%w: constraint %d has unknown sign %d", ErrBadProblem, i, int(c.Sign))
		}
	}
	if p.NumVars() == 0 {
		return fmt.Errorf("%w: no variables", ErrBadProblem)
	}

	return nil
}

// withBound returns a copy of p with one more constraint on variable i.
// The copy shares coefficient slices with p; they are never mutated.
func (p *Problem) withBound(i int, sign Sign, rhs rational.Rat) *Problem {
	coeffs := make([]rational.Rat, i+1)
	coeffs[i] = rational.One()
	cs := make([]Constraint, len(p.Constraints), len(p.Constraints)+1)
	copy(cs, p.Constraints)

	return &Problem{
		Objective:   p.Objective,
		Sense:       p.Sense,
		Constraints: append(cs, Constraint{Coeffs: coeffs, Sign: sign, RHS: rhs}),
	}
}

// Solution is an optimal vertex.
type Solution struct {
	// Variables holds one value per decision variable.
	Variables []rational.Rat
	// Value is the objective at Variables.
	Value rational.Rat
	// Iterations counts simplex pivots (summed over every node for
	// SolveInteger).
	Iterations int
}

// IsIntegral reports whether every variable is an integer.
func (s *Solution) IsIntegral() bool {
	return firstFractional(s.Variables) < 0
}

// firstFractional returns the index of the first non-integer value, or -1.
func firstFractional(xs []rational.Rat) int {
	for i, v := range xs {
		if !v.IsInt() {
			return i
		}
	}

	return -1
}

// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
)

// tableau is the big-M simplex table of a normalized minimization problem.
//
// Column layout: decision variables [0, nVars), then one slack or surplus per
// inequality row, then one artificial per ≥ or = row starting at firstArt.
// The last column of a holds the right-hand side.
type tableau struct {
	a        *matrix.Dense
	cost     []BigM
	basis    []int
	nVars    int
	firstArt int
	cols     int
}

// newTableau normalizes p and builds the initial table. Every row gets a
// basic column: its slack for ≤, its artificial for ≥ and =.
func newTableau(p *Problem) *tableau {
	n := p.NumVars()
	m := len(p.Constraints)

	rows := make([]Constraint, m)
	aux, art := 0, 0
	for i, c := range p.Constraints {
		coeffs := make([]rational.Rat, n)
		copy(coeffs, c.Coeffs)
		sign, rhs := c.Sign, c.RHS
		if rhs.Sign() < 0 {
			for j := range coeffs {
				coeffs[j] = coeffs[j].Neg()
			}
			sign, rhs = sign.flip(), rhs.Neg()
		}
		rows[i] = Constraint{Coeffs: coeffs, Sign: sign, RHS: rhs}
		if sign != Equal {
			aux++
		}
		if sign != LessEq {
			art++
		}
	}

	cols := n + aux + art
	t := &tableau{
		cost:     make([]BigM, cols),
		basis:    make([]int, m),
		nVars:    n,
		firstArt: n + aux,
		cols:     cols,
	}
	// Shape is non-negative, so NewDense cannot fail.
	t.a, _ = matrix.NewDense(m, cols+1)

	for j, c := range p.Objective {
		if p.Sense == Maximize {
			c = c.Neg()
		}
		t.cost[j] = Real(c)
	}
	for j := t.firstArt; j < cols; j++ {
		t.cost[j] = M()
	}

	nextAux, nextArt := n, t.firstArt
	for i, r := range rows {
		for j, v := range r.Coeffs {
			t.set(i, j, v)
		}
		t.set(i, cols, r.RHS)
		switch r.Sign {
		case LessEq:
			t.set(i, nextAux, rational.One())
			t.basis[i] = nextAux
			nextAux++
		case GreaterEq:
			t.set(i, nextAux, rational.FromInt(-1))
			nextAux++
			t.set(i, nextArt, rational.One())
			t.basis[i] = nextArt
			nextArt++
		case Equal:
			t.set(i, nextArt, rational.One())
			t.basis[i] = nextArt
			nextArt++
		}
	}

	return t
}

// at reads an in-range entry.
func (t *tableau) at(i, j int) rational.Rat {
	v, _ := t.a.At(i, j)
	return v
}

// set writes an in-range entry.
func (t *tableau) set(i, j int, v rational.Rat) {
	_ = t.a.Set(i, j, v)
}

// rhs returns the right-hand side of row i.
func (t *tableau) rhs(i int) rational.Rat { return t.at(i, t.cols) }

// reducedCost returns cⱼ − Σᵢ c_basis[i]·a[i][j].
func (t *tableau) reducedCost(j int) BigM {
	d := t.cost[j]
	for i, b := range t.basis {
		if a := t.at(i, j); !a.IsZero() {
			d = d.Sub(t.cost[b].Scale(a))
		}
	}

	return d
}

// entering returns the lowest-index column with a negative reduced cost, or
// -1 at optimality. Non-basic artificial columns never re-enter.
func (t *tableau) entering() (int, BigM) {
	basic := make([]bool, t.cols)
	for _, b := range t.basis {
		basic[b] = true
	}
	for j := 0; j < t.firstArt; j++ {
		if basic[j] {
			continue
		}
		if d := t.reducedCost(j); d.Sign() < 0 {
			return j, d
		}
	}

	return -1, BigM{}
}

// leaving runs the minimum-ratio test on column j. Ties go to the row whose
// basic variable has the lowest index. It returns -1 when no entry of the
// column is positive.
func (t *tableau) leaving(j int) int {
	row := -1
	var best rational.Rat
	for i := range t.basis {
		a := t.at(i, j)
		if a.Sign() <= 0 {
			continue
		}
		ratio, _ := t.rhs(i).Div(a)
		if row < 0 {
			row, best = i, ratio
			continue
		}
		switch c := ratio.Cmp(best); {
		case c < 0, c == 0 && t.basis[i] < t.basis[row]:
			row, best = i, ratio
		}
	}

	return row
}

// pivot makes column j basic in row r.
func (t *tableau) pivot(r, j int) error {
	inv, err := t.at(r, j).Inv()
	if err != nil {
		return err
	}
	if err = t.a.ScaleRow(r, inv); err != nil {
		return err
	}
	for i := range t.basis {
		if i == r {
			continue
		}
		if f := t.at(i, j); !f.IsZero() {
			if err = t.a.AddScaledRow(i, r, f.Neg()); err != nil {
				return err
			}
		}
	}
	t.basis[r] = j

	return nil
}

// infeasible reports whether an artificial variable is basic at a positive
// level.
func (t *tableau) infeasible() bool {
	for i, b := range t.basis {
		if b >= t.firstArt && t.rhs(i).Sign() > 0 {
			return true
		}
	}

	return false
}

// values returns the decision variables of the current basic solution.
func (t *tableau) values() []rational.Rat {
	x := make([]rational.Rat, t.nVars)
	for i, b := range t.basis {
		if b < t.nVars {
			x[b] = t.rhs(i)
		}
	}

	return x
}

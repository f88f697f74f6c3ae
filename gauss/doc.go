// SPDX-License-Identifier: MIT

// Package gauss implements exact Gauss–Jordan elimination over rational
// matrices, and the results derived from one elimination pass: reduced
// row-echelon form, rank, determinant, inverse, null space and the solution
// of linear systems.
//
// Pivot rule: for each column, left to right, the pivot is the FIRST row at
// or below the current pivot row holding a non-zero entry. Magnitude plays no
// role because there is no round-off to minimize, and the fixed rule makes
// every run reproducible.
//
// Every operation works on a private copy; caller-owned matrices are never
// mutated, and a failing call has no partial effect.
//
// Underdetermined systems (consistent, rank < unknowns) fail with
// ErrUnderdetermined by default. Solve with
// WithUnderdetermined(FreeVariablesZero) returns the particular solution with
// every free variable set to zero; SolveGeneral returns the full
// parametrization x = Particular + Σ tᵢ·Basis[i].
//
// Observability follows the hook style: WithOnPivot is called once per pivot
// with the step number, the pivot position and its un-normalized value.
//
// Errors:
//   - ErrDimensionMismatch: shape disagreement (non-square determinant or
//     inverse, wrong right-hand-side length).
//   - ErrSingular: inverse of a rank-deficient matrix.
//   - ErrNoSolution: inconsistent system.
//   - ErrUnderdetermined: consistent system with free variables.
//   - ErrOptionViolation: invalid option value.
//   - matrix.ErrNilMatrix: nil input.
package gauss

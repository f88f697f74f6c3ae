// SPDX-License-Identifier: MIT

// Package simplex solves linear programs exactly over rationals with the
// big-M simplex method, and integer programs by branch-and-bound on top of it.
//
// Variables are non-negative. A Problem lists an objective, a Sense and
// constraints of the form Σ aⱼxⱼ (≤ | = | ≥) b. Artificial variables carry
// the cost M, represented exactly by BigM = Big·M + Small with lexicographic
// order, so no numeric "large constant" is ever chosen.
//
// Pivoting follows Bland's rule, which makes every run deterministic and
// rules out cycling on degenerate vertices.
//
// SolveInteger explores both branches of every node concurrently through a
// batch.Pool. A shared incumbent prunes nodes whose relaxation is strictly
// worse; ties between branches resolve to the left one.
//
// AssignFleet models assigning ship types to transport lines: every ship is
// used, every line's demand is met, and the total running cost is minimal.
//
// Observability follows the hook style: WithOnPivot and WithOnNode observe
// progress, and WithLogger receives debug records per pivot and node.
//
// Errors:
//   - ErrUnbounded, ErrInfeasible: the program has no optimum.
//   - ErrIterationLimit, ErrNodeLimit: a configured cap was hit.
//   - ErrBadProblem: malformed input.
//   - ErrDimensionMismatch: AssignFleet shapes disagree.
//   - ErrOptionViolation: invalid option value.
package simplex

// Package lvlexact is your toolbox for exact linear algebra over the
// rationals: every entry is a fraction in lowest terms, so a solution is the
// solution, not an approximation of it.
//
// 🚀 What is lvlexact?
//
//	A small, dependency-light library that brings together:
//		• Exact scalars: arbitrary-precision rationals, parsing and decimal rendering
//		• Dense matrices and vectors with row operations and kernels
//		• Gauss–Jordan elimination: RREF, rank, determinant, inverse, solve, null space
//		• Batch dispatch: many independent problems on a worker pool, order preserved
//		• Linear and integer programming: big-M simplex and branch-and-bound
//		• Fixtures: Hilbert, Vandermonde, permutation and seeded random matrices
//
// ✨ Why choose lvlexact?
//
//   - No round-off: singularity, rank and consistency are decided exactly
//   - Deterministic: first-non-zero pivots and Bland's rule, no tolerances
//   - Immutable inputs: engines work on private copies
//   - Observable: hooks (OnPivot, OnNode, OnJobDone) and optional slog loggers
//
// Packages:
//
//	rational/  the exact scalar Rat
//	matrix/    Dense, Vector, row operations, validators and kernels
//	gauss/     elimination engine and everything derived from it
//	batch/     parallel dispatcher for independent jobs
//	simplex/   exact LP / ILP solver and the fleet assignment model
//	builder/   deterministic and seeded matrix fixtures
//	examples/  runnable scenarios
//
// Quick example:
//
//	| 2  1 | x = | 5 |     →     x = | 2 |
//	| 1  3 |     | 5 |               | 1 |
//
//	go get github.com/katalvlaran/lvlexact
package lvlexact

// SPDX-License-Identifier: MIT

// Package batch runs independent elimination jobs on a fixed-size worker pool
// and returns one outcome per job, in submission order.
//
// 🚀 What is it?
//
//	Map is the generic fan-out: items go to at most Workers goroutines
//	(golang.org/x/sync/errgroup with a limit), each outcome lands in the slot
//	of its input index, whatever order the work finishes in.
//	Run and SolveEach are the linear-algebra front ends built on Map.
//
// ✨ Contract
//
//   - Zero jobs → empty result slice, nil error.
//   - Jobs are isolated: an error, or even a panic, inside one job is
//     reported in that job's slot only; siblings run to completion.
//   - Cancellation is all-or-nothing at batch granularity: if ctx ends
//     before the batch completes, the call returns ctx's error and no
//     partial results. There is no per-job timeout; a job with huge
//     coefficients occupies its worker until it finishes.
//   - Jobs never share mutable state. Every elimination runs on its own
//     copy, so the same input matrix may appear in many jobs.
//
// 🔍 Observability
//
//	WithOnJobDone(fn) is called once per finished job (from worker
//	goroutines, so fn must be safe for concurrent use). WithLogger attaches a
//	*slog.Logger for debug-level per-job records; the default discards.
package batch

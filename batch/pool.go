// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Outcome is one job's result: Value on success, Err otherwise.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Map applies fn to every item on p's workers and returns the outcomes in
// input order.
//
// Per-item errors and panics are captured in that item's Outcome.Err. The
// returned error is non-nil only when ctx ends before the batch completes;
// the outcomes are then discarded. A nil p uses NewPool().
//
// Complexity: at most p.Workers() calls of fn run at once.
func Map[T, R any](ctx context.Context, p *Pool, items []T, fn func(context.Context, T) (R, error)) ([]Outcome[R], error) {
	out := make([]Outcome[R], len(items))
	if len(items) == 0 {
		return out, nil
	}
	if p == nil {
		p = NewPool()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			out[i] = runOne(gctx, i, items[i], fn)
			p.logger.LogAttrs(gctx, slog.LevelDebug, "job done",
				slog.Int("index", i),
				slog.Duration("elapsed", time.Since(start)),
				slog.Any("err", out[i].Err),
			)
			p.onJobDone(i, out[i].Err)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, batchErrorf(opMap, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, batchErrorf(opMap, err)
	}

	return out, nil
}

// runOne calls fn, turning a panic into ErrJobPanicked.
func runOne[T, R any](ctx context.Context, i int, item T, fn func(context.Context, T) (R, error)) (o Outcome[R]) {
	defer func() {
		if r := recover(); r != nil {
			o = Outcome[R]{Err: fmt.Errorf("job %d: %w: %v", i, ErrJobPanicked, r)}
		}
	}()
	v, err := fn(ctx, item)

	return Outcome[R]{Value: v, Err: err}
}

// SPDX-License-Identifier: MIT

package batch

import (
	"io"
	"log/slog"
	"runtime"
)

// Option configures a Pool.
// Option constructors panic on programmer error (non-positive worker count,
// nil logger, nil hook); Pool operations themselves never panic.
type Option func(*Pool)

// Pool is a reusable worker-pool configuration. It holds no goroutines
// between calls and is safe for concurrent use by multiple batches.
type Pool struct {
	workers   int
	logger    *slog.Logger
	onJobDone func(index int, err error)
}

// DefaultWorkers returns the default pool size, runtime.GOMAXPROCS(0).
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// NewPool returns a Pool with defaults overridden by opts:
//   - workers: DefaultWorkers()
//   - logger: discards everything
//   - onJobDone: no-op
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		workers:   DefaultWorkers(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		onJobDone: func(int, error) {},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.logger = p.logger.With(slog.String("component", "batch"))

	return p
}

// Workers returns the maximum number of concurrently running jobs.
func (p *Pool) Workers() int { return p.workers }

// WithWorkers sets the pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers(n<1)")
	}
	return func(p *Pool) {
		p.workers = n
	}
}

// WithLogger attaches a structured logger for per-job debug records.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(p *Pool) {
		p.logger = l
	}
}

// WithOnJobDone registers a hook called once per finished job with its input
// index and its error (nil on success). It runs on worker goroutines.
// Panics on nil.
func WithOnJobDone(fn func(index int, err error)) Option {
	if fn == nil {
		panic("batch: WithOnJobDone(nil)")
	}
	return func(p *Pool) {
		p.onJobDone = fn
	}
}

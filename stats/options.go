// SPDX-License-Identifier: MIT
// Package: percolation/stats
//
// options.go — functional options and resolved configuration for Run/New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     Run itself never panics.
//   • Later options override earlier ones.
//
// Defaults:
//   • rng      = clock-seeded *rand.Rand
//   • workers  = runtime.GOMAXPROCS(0)
//   • strategy = Rejection
//   • logger   = zap.NewNop()
//   • metrics  = nil (no instrumentation)

package stats

import (
	"math/rand"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Option customizes a Monte Carlo run.
type Option func(*config)

// config is the resolved set of knobs for one run.
type config struct {
	rng      *rand.Rand // master stream; only used to draw per-trial seeds
	workers  int
	strategy Strategy
	logger   *zap.Logger
	metrics  *Metrics
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		workers:  runtime.GOMAXPROCS(0),
		strategy: Rejection,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithSeed seeds the master random stream for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the master random stream. It is read from a single
// goroutine only. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("stats: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWorkers bounds the number of trials running concurrently.
// Panics if w <= 0.
func WithWorkers(w int) Option {
	if w <= 0 {
		panic("stats: WithWorkers(w<=0)")
	}
	return func(c *config) {
		c.workers = w
	}
}

// WithStrategy selects how closed sites are drawn. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != Rejection && s != Shuffle {
		panic("stats: WithStrategy(unknown)")
	}
	return func(c *config) {
		c.strategy = s
	}
}

// WithLogger routes run diagnostics to l. Panics on nil; use zap.NewNop()
// to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("stats: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records per-trial observations into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("stats: WithMetrics(nil)")
	}
	return func(c *config) {
		c.metrics = m
	}
}

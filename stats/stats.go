// SPDX-License-Identifier: MIT

package stats

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/percolation"
)

// confidenceZ is the two-sided 95% normal quantile.
const confidenceZ = 1.96

// Stats holds the per-trial threshold fractions of a completed run and
// their summary statistics. It is immutable once returned.
type Stats struct {
	n       int
	results []float64
	mean    float64
	stddev  float64
}

// New runs trials independent experiments on n×n lattices and returns their
// statistics. It is Run with context.Background().
// Returns ErrInvalidArgument if n is outside [1, percolation.MaxSize] or trials <= 0.
func New(n, trials int, opts ...Option) (*Stats, error) {
	return Run(context.Background(), n, trials, opts...)
}

// Run executes trials independent experiments on n×n lattices using up to
// WithWorkers goroutines. Each worker owns its Trial and writes only its own
// slot of the results slice.
//
// Returns ErrInvalidArgument if n is outside [1, percolation.MaxSize] or
// trials <= 0, before any work.
// If ctx is canceled, in-flight trials are abandoned and the wrapped context
// error is returned without a Stats.
//
// Complexity: O(T·N²·α(N²)) total work.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Stats, error) {
	if n <= 0 || n > percolation.MaxSize || trials <= 0 {
		return nil, fmt.Errorf("Run(n=%d, trials=%d): %w", n, trials, ErrInvalidArgument)
	}
	cfg := newConfig(opts...)
	log := cfg.logger.With(
		zap.Int("n", n),
		zap.Int("trials", trials),
		zap.String("strategy", cfg.strategy.String()),
	)
	log.Debug("starting monte carlo run",
		zap.Int("workers", cfg.workers),
		zap.String("sites_per_trial", humanize.Comma(int64(n)*int64(n))),
	)
	start := time.Now()

	// Seeds are drawn sequentially so results do not depend on scheduling.
	seeds := make([]int64, trials)
	for i := range seeds {
		seeds[i] = cfg.rng.Int63()
	}

	results := make([]float64, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	scheduled := 0
	for i := 0; i < trials; i++ {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		i := i // per-iteration copy; module targets go 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			trialStart := time.Now()
			t, err := NewTrial(n, rand.New(rand.NewSource(seeds[i])), cfg.strategy)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			frac, err := t.Run(gctx)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = frac
			cfg.metrics.observeTrial(frac, t.Opened(), time.Since(trialStart))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("monte carlo run abandoned", zap.Error(err))
		return nil, fmt.Errorf("Run(n=%d, trials=%d): %w", n, trials, err)
	}
	// A cancel seen by the scheduling loop leaves trials unscheduled.
	if scheduled < trials {
		return nil, fmt.Errorf("Run(n=%d, trials=%d): %w", n, trials, context.Cause(gctx))
	}

	s := &Stats{n: n, results: results}
	s.mean = mean(results)
	s.stddev = sampleStddev(results, s.mean)

	log.Info("monte carlo run complete",
		zap.Float64("mean", s.mean),
		zap.Float64("stddev", s.stddev),
		zap.Duration("elapsed", time.Since(start)),
	)

	return s, nil
}

// mean returns Σx / len(x). xs must be non-empty.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// sampleStddev returns sqrt(Σ(x-m)² / (len-1)), or NaN when len(xs) < 2.
func sampleStddev(xs []float64, m float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(xs)-1))
}

// Size returns N, the lattice side length used by every trial.
func (s *Stats) Size() int { return s.n }

// Trials returns T, the number of completed trials.
func (s *Stats) Trials() int { return len(s.results) }

// Results returns a copy of the per-trial opened fractions, in trial order.
func (s *Stats) Results() []float64 {
	out := make([]float64, len(s.results))
	copy(out, s.results)

	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 { return s.mean }

// Stddev returns the sample standard deviation (divisor T-1).
// With a single trial it returns NaN: check StddevDefined before using the
// value arithmetically.
func (s *Stats) Stddev() float64 { return s.stddev }

// StddevDefined reports whether Stddev is a number, i.e. T > 1.
func (s *Stats) StddevDefined() bool { return len(s.results) > 1 }

// ConfidenceLow returns mean - 1.96·stddev/√T.
func (s *Stats) ConfidenceLow() float64 {
	return s.mean - s.halfWidth()
}

// ConfidenceHigh returns mean + 1.96·stddev/√T.
func (s *Stats) ConfidenceHigh() float64 {
	return s.mean + s.halfWidth()
}

// ConfidenceInterval returns the 95% confidence bounds for the mean.
// Both bounds are NaN when T == 1.
func (s *Stats) ConfidenceInterval() (lo, hi float64) {
	return s.ConfidenceLow(), s.ConfidenceHigh()
}

func (s *Stats) halfWidth() float64 {
	return confidenceZ * s.stddev / math.Sqrt(float64(len(s.results)))
}

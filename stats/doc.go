// SPDX-License-Identifier: MIT

// Package stats estimates the percolation threshold of an N×N lattice by
// Monte Carlo simulation.
//
// What:
//
//   - Trial opens uniformly random closed sites on a fresh percolation.Grid
//     until it percolates and reports the opened fraction.
//   - Run executes T independent trials on a bounded worker pool and reduces
//     the fractions to Mean, Stddev and a 95% ConfidenceInterval.
//
// Trial lifecycle:
//
//	Empty ──Step──▶ Opening ──Step (percolates)──▶ Percolated (terminal)
//	                  ▲   │
//	                  └───┘ Step (distinct closed site)
//
// Determinism:
//
//   - Per-trial seeds are drawn up front from one master *rand.Rand, so a
//     fixed WithSeed gives identical Results for any WithWorkers value.
//   - Without WithSeed/WithRand the master stream is seeded from the clock.
//
// Sampling strategies:
//
//   - Rejection: draw (row, col) uniformly, redraw while the site is open.
//   - Shuffle:   open sites in a uniformly random permutation order.
//     Both give every closed site equal probability at each step.
//
// Statistics:
//
//   - Mean:   x̄ = Σxᵢ / T
//   - Stddev: s = sqrt(Σ(xᵢ-x̄)² / (T-1)); NaN when T == 1.
//   - 95% confidence interval: x̄ ± 1.96·s/√T; NaN bounds when T == 1.
//
// Errors:
//
//   - ErrInvalidArgument: N <= 0 or T <= 0.
//   - ErrTrialComplete:   Step called on a Percolated trial.
//   - context errors:     Run canceled; no partial Stats is returned.
package stats

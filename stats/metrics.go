package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "percolation"

// Metrics holds Prometheus collectors for Monte Carlo runs.
// All methods are safe on a nil receiver.
type Metrics struct {
	// TrialsTotal counts completed trials.
	TrialsTotal prometheus.Counter
	// SitesOpenedTotal counts sites opened across all trials.
	SitesOpenedTotal prometheus.Counter
	// Threshold records each trial's opened fraction.
	Threshold prometheus.Histogram
	// TrialDuration records wall time per trial.
	TrialDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		TrialsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Total number of completed percolation trials",
		}),
		SitesOpenedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sites_opened_total",
			Help:      "Total number of sites opened across all trials",
		}),
		Threshold: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "threshold_fraction",
			Help:      "Fraction of sites open when the lattice first percolated",
			Buckets:   prometheus.LinearBuckets(0.40, 0.02, 20),
		}),
		TrialDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_duration_seconds",
			Help:      "Wall time of a single trial in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
		}),
	}
}

// observeTrial records one completed trial.
func (m *Metrics) observeTrial(fraction float64, opened int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.TrialsTotal.Inc()
	m.SitesOpenedTotal.Add(float64(opened))
	m.Threshold.Observe(fraction)
	m.TrialDuration.Observe(elapsed.Seconds())
}

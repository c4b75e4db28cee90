package stats_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/percolation/stats"
)

// BenchmarkRun compares serial and pooled execution of 64 trials on 100×100.
func BenchmarkRun(b *testing.B) {
	cases := []struct {
		name    string
		workers int
	}{
		{"Serial", 1},
		{"Pooled", runtime.GOMAXPROCS(0)},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := stats.New(100, 64, stats.WithSeed(42), stats.WithWorkers(tc.workers)); err != nil {
					b.Fatalf("New failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkStrategy compares rejection sampling with shuffled order.
func BenchmarkStrategy(b *testing.B) {
	for _, s := range []stats.Strategy{stats.Rejection, stats.Shuffle} {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := stats.New(100, 16, stats.WithSeed(42), stats.WithWorkers(1), stats.WithStrategy(s)); err != nil {
					b.Fatalf("New failed: %v", err)
				}
			}
		})
	}
}

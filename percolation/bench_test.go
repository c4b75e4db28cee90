package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
)

// BenchmarkOpenUntilPercolates measures a full trial on a 200×200 lattice
// with a fixed site permutation.
// Complexity: O(N² α(N²)) per iteration.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	order := rand.New(rand.NewSource(42)).Perm(n * n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := percolation.New(n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for _, idx := range order {
			_ = g.Open(idx/n+1, idx%n+1)
			if g.Percolates() {
				break
			}
		}
	}
}

// BenchmarkClusters measures breadth-first cluster discovery on a
// half-open 500×500 lattice.
func BenchmarkClusters(b *testing.B) {
	const n = 500
	r := rand.New(rand.NewSource(42))
	g, err := percolation.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for _, idx := range r.Perm(n * n)[:n*n/2] {
		_ = g.Open(idx/n+1, idx%n+1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clusters()
	}
}

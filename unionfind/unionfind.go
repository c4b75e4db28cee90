package unionfind

import "fmt"

// UnionFind is a weighted quick-union structure with path halving.
// Elements are the integers 0..Len()-1. It is not safe for concurrent use;
// callers that share one instance across goroutines must synchronize.
type UnionFind struct {
	parent []int // parent[i] == i for roots
	size   []int // size[r] is valid only when r is a root
	count  int   // number of disjoint sets
}

// New returns a UnionFind of n singleton sets.
// Returns ErrNegativeSize if n < 0. n == 0 yields an empty, usable structure.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrNegativeSize)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// validate reports ErrIndexOutOfRange for p outside [0, n).
func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("index %d not in [0,%d): %w", p, len(uf.parent), ErrIndexOutOfRange)
	}

	return nil
}

// root walks to the root of p, halving the path as it goes.
// p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		// Path halving: point p at its grandparent.
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Find returns the root of the set containing p.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, fmt.Errorf("Find: %w", err)
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same set.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}
	if err := uf.validate(q); err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the sets containing p and q, attaching the smaller tree
// under the larger root. It returns true if two distinct sets were merged
// and false if p and q were already connected.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, fmt.Errorf("Union: %w", err)
	}
	if err := uf.validate(q); err != nil {
		return false, fmt.Errorf("Union: %w", err)
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return false, nil
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return true, nil
}

// SizeOf returns the number of elements in the set containing p.
func (uf *UnionFind) SizeOf(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, fmt.Errorf("SizeOf: %w", err)
	}

	return uf.size[uf.root(p)], nil
}

// Package unionfind provides a fixed-size disjoint-set (union–find) structure
// over dense integer elements 0..n-1.
//
// What:
//
//   - UnionFind partitions n elements into disjoint sets.
//   - Union merges the sets of two elements (union by size).
//   - Find returns the canonical root of an element's set (path halving).
//   - Connected reports whether two elements share a set.
//
// Why:
//
//   - Dynamic connectivity: lattice percolation, image labelling,
//     Kruskal-style spanning forests.
//   - Near-constant amortized cost per operation, O(n) memory.
//
// Complexity:
//
//   - New:              O(n) time, O(n) memory.
//   - Find/Union/Connected: O(α(n)) amortized (α = inverse Ackermann).
//
// Errors:
//
//   - ErrNegativeSize:    New called with n < 0.
//   - ErrIndexOutOfRange: an element outside [0, n) was referenced.
package unionfind

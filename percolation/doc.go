// Package percolation models an N×N lattice of sites that are opened one at
// a time, and answers connectivity questions between the top and bottom rows.
//
// What:
//
//   - Grid tracks the open/closed state of every site (1-indexed rows/cols).
//   - IsFull reports whether an open site connects to the top row through
//     a chain of open, orthogonally adjacent sites.
//   - Percolates reports whether any such chain joins top and bottom.
//   - Clusters lists connected groups of open sites by breadth-first search.
//
// How:
//
//	Two union–find structures are kept side by side:
//
//	  perc: N²+2 elements = top virtual node, N² sites, bottom virtual node
//	  full: N²+1 elements = top virtual node, N² sites
//
//	Percolates queries perc (top ~ bottom). IsFull queries full only, so a
//	site never appears full through the bottom node ("backwash").
//
//	Site (row, col) maps to index (row-1)*N + col; the top node is 0 and
//	the bottom node is N²+1.
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Open:       at most six unions, O(α(N²)) amortized each.
//   - IsOpen:     O(1).
//   - IsFull:     O(α(N²)) amortized.
//   - Percolates: O(α(N²)) amortized.
//   - Clusters:   O(N²) time and memory.
//
// Errors:
//
//   - ErrInvalidSize: New called with N <= 0.
//   - ErrOutOfRange:  row or column outside [1, N].
package percolation

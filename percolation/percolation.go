package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// Grid is an N×N percolation lattice. Sites start closed and may only be
// opened. A Grid owns its state exclusively and is not safe for concurrent
// mutation; use one Grid per goroutine.
type Grid struct {
	n         int
	open      []bool // open[idx-1] for site index idx in [1, n²]
	openCount int
	perc      *unionfind.UnionFind // top, sites, bottom
	full      *unionfind.UnionFind // top, sites
	bottom    int                  // n²+1, present in perc only
}

// New constructs an n×n Grid with every site closed.
// Returns ErrInvalidSize if n <= 0 or n > MaxSize.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 || n > MaxSize {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	sites := n * n
	perc, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("New(%d): percolation set: %w", n, err)
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, fmt.Errorf("New(%d): fullness set: %w", n, err)
	}

	return &Grid{
		n:      n,
		open:   make([]bool, sites),
		perc:   perc,
		full:   full,
		bottom: sites + 1,
	}, nil
}

// Size returns N, the side length of the lattice.
func (g *Grid) Size() int {
	return g.n
}

// NumberOfOpenSites returns how many distinct sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// inBounds reports whether (row,col) lies within [1,n]×[1,n].
func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index maps (row,col) to its site index in [1, n²].
func (g *Grid) index(row, col int) int {
	return Site{Row: row, Col: col}.Index(g.n)
}

// Open marks (row,col) open and joins it to every open neighbour.
// A top-row site is joined to the top node in both structures; a bottom-row
// site is joined to the bottom node in the percolation structure only.
// Opening an already open site is a no-op.
// Returns ErrOutOfRange if row or col is outside [1, N].
func (g *Grid) Open(row, col int) error {
	if !g.inBounds(row, col) {
		return gridErrorf("Open", row, col, ErrOutOfRange)
	}
	p := g.index(row, col)
	if g.open[p-1] {
		return nil
	}
	g.open[p-1] = true
	g.openCount++

	if row == 1 {
		if err := g.unionBoth(topNode, p); err != nil {
			return gridErrorf("Open", row, col, err)
		}
	}
	if row == g.n {
		if _, err := g.perc.Union(p, g.bottom); err != nil {
			return gridErrorf("Open", row, col, err)
		}
	}
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		q := g.index(r, c)
		if !g.open[q-1] {
			continue
		}
		if err := g.unionBoth(p, q); err != nil {
			return gridErrorf("Open", row, col, err)
		}
	}

	return nil
}

// unionBoth merges p and q in the percolation and fullness structures.
func (g *Grid) unionBoth(p, q int) error {
	if _, err := g.perc.Union(p, q); err != nil {
		return err
	}
	_, err := g.full.Union(p, q)

	return err
}

// IsOpen reports whether (row,col) has been opened.
// Returns ErrOutOfRange if row or col is outside [1, N].
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, gridErrorf("IsOpen", row, col, ErrOutOfRange)
	}

	return g.open[g.index(row, col)-1], nil
}

// IsFull reports whether (row,col) is open and connected to the top row
// through open sites. Closed sites are never full.
// Returns ErrOutOfRange if row or col is outside [1, N].
func (g *Grid) IsFull(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, gridErrorf("IsFull", row, col, ErrOutOfRange)
	}
	p := g.index(row, col)
	if !g.open[p-1] {
		return false, nil
	}
	ok, err := g.full.Connected(topNode, p)
	if err != nil {
		return false, gridErrorf("IsFull", row, col, err)
	}

	return ok, nil
}

// Percolates reports whether the top and bottom rows are joined by open sites.
// It has no side effects; once true it stays true.
func (g *Grid) Percolates() bool {
	// Both nodes always exist, so Connected cannot fail here.
	ok, _ := g.perc.Connected(topNode, g.bottom)

	return ok
}

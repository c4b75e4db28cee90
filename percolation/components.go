package percolation

// Clusters finds all connected groups of open sites under orthogonal
// adjacency. Each cluster lists its sites in breadth-first order from the
// cluster's first site in row-major order; clusters themselves appear in
// row-major order of that first site.
//
// Clusters is independent of the union–find structures and is useful as a
// cross-check or for inspecting a lattice after a trial.
//
// Time:   O(N²).
// Memory: O(N²) for visited flags and output.
func (g *Grid) Clusters() [][]Site {
	seen := make([]bool, len(g.open))
	var comps [][]Site

	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			i0 := g.index(row, col)
			if !g.open[i0-1] || seen[i0-1] {
				continue
			}
			queue := []Site{{Row: row, Col: col}}
			seen[i0-1] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range neighborOffsets {
					r, c := u.Row+d[0], u.Col+d[1]
					if !g.inBounds(r, c) {
						continue
					}
					vi := g.index(r, c)
					if !g.open[vi-1] || seen[vi-1] {
						continue
					}
					seen[vi-1] = true
					queue = append(queue, Site{Row: r, Col: c})
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/percolation/percolation"
)

// ctxCheckInterval is how many opens a trial performs between context checks.
const ctxCheckInterval = 1024

// Source draws uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Strategy selects how a trial picks the next closed site.
type Strategy int

const (
	// Rejection draws uniform (row, col) pairs and redraws open sites.
	Rejection Strategy = iota
	// Shuffle opens sites in the order of a uniform random permutation.
	Shuffle
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case Rejection:
		return "rejection"
	case Shuffle:
		return "shuffle"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "rejection" or "shuffle" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rejection":
		return Rejection, nil
	case "shuffle":
		return Shuffle, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// TrialState is the lifecycle position of a Trial.
type TrialState int

const (
	// Empty: no site opened yet.
	Empty TrialState = iota
	// Opening: at least one site opened, not yet percolating.
	Opening
	// Percolated: terminal; the lattice percolates.
	Percolated
)

// String returns the state name.
func (s TrialState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Opening:
		return "Opening"
	case Percolated:
		return "Percolated"
	default:
		return fmt.Sprintf("TrialState(%d)", int(s))
	}
}

// Trial is one experiment: a fresh Grid filled until it percolates.
// A Trial owns its Grid and Source and must not be shared across goroutines.
type Trial struct {
	grid     *percolation.Grid
	src      Source
	strategy Strategy
	order    []int // Shuffle only: zero-based site indices in opening order
	next     int   // Shuffle only: position in order
	opened   int
	state    TrialState
}

// NewTrial prepares a trial on a closed n×n lattice.
// Returns ErrInvalidArgument if n is outside [1, percolation.MaxSize] or src
// is nil, and ErrUnknownStrategy if strategy is neither Rejection nor Shuffle.
func NewTrial(n int, src Source, strategy Strategy) (*Trial, error) {
	if n <= 0 || n > percolation.MaxSize || src == nil {
		return nil, fmt.Errorf("NewTrial(n=%d): %w", n, ErrInvalidArgument)
	}
	if strategy != Rejection && strategy != Shuffle {
		return nil, fmt.Errorf("NewTrial(strategy=%s): %w", strategy, ErrUnknownStrategy)
	}
	grid, err := percolation.New(n)
	if err != nil {
		return nil, fmt.Errorf("NewTrial(n=%d): %w", n, err)
	}
	t := &Trial{grid: grid, src: src, strategy: strategy}
	if strategy == Shuffle {
		t.order = permutation(n*n, src)
	}

	return t, nil
}

// permutation returns a uniform random ordering of 0..m-1 (Fisher–Yates).
func permutation(m int, src Source) []int {
	p := make([]int, m)
	for i := range p {
		p[i] = i
	}
	for i := m - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// State returns the current lifecycle state.
func (t *Trial) State() TrialState { return t.state }

// Opened returns how many distinct sites the trial has opened.
func (t *Trial) Opened() int { return t.opened }

// Grid exposes the trial's lattice for inspection.
func (t *Trial) Grid() *percolation.Grid { return t.grid }

// Fraction returns Opened / N².
func (t *Trial) Fraction() float64 {
	n := t.grid.Size()
	return float64(t.opened) / float64(n*n)
}

// Step opens one closed site chosen by the trial's strategy and reports
// whether the lattice now percolates.
// Returns ErrTrialComplete if the trial has already percolated.
func (t *Trial) Step() (bool, error) {
	if t.state == Percolated {
		return true, ErrTrialComplete
	}
	row, col, err := t.pick()
	if err != nil {
		return false, err
	}
	if err = t.grid.Open(row, col); err != nil {
		return false, fmt.Errorf("Step: %w", err)
	}
	t.opened++
	t.state = Opening
	if t.grid.Percolates() {
		t.state = Percolated
		return true, nil
	}

	return false, nil
}

// pick returns the next closed site.
func (t *Trial) pick() (row, col int, err error) {
	n := t.grid.Size()
	if t.strategy == Shuffle {
		idx := t.order[t.next]
		t.next++
		return idx/n + 1, idx%n + 1, nil
	}
	for {
		row, col = t.src.Intn(n)+1, t.src.Intn(n)+1
		open, err := t.grid.IsOpen(row, col)
		if err != nil {
			return 0, 0, fmt.Errorf("pick: %w", err)
		}
		if !open {
			return row, col, nil
		}
	}
}

// Run steps the trial until it percolates and returns the opened fraction.
// The context is polled every ctxCheckInterval opens; on cancellation the
// trial is abandoned and ctx.Err() is returned.
func (t *Trial) Run(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	for t.state != Percolated {
		if _, err := t.Step(); err != nil {
			return 0, err
		}
		if t.opened%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
	}

	return t.Fraction(), nil
}

package percolation

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a lattice size N <= 0 or N > MaxSize.
	ErrInvalidSize = errors.New("percolation: invalid lattice size")
	// ErrOutOfRange indicates a row or column outside [1, N].
	ErrOutOfRange = errors.New("percolation: index out of range")
)

// MaxSize is the largest side length N for which N²+2 fits in an int,
// so site and virtual-node indices never overflow.
var MaxSize = int(math.Sqrt(float64(math.MaxInt - 2)))

// topNode is the virtual element standing for the whole top row, in both structures.
const topNode = 0

// neighborOffsets lists the four orthogonal neighbours as (dRow, dCol).
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Site addresses one lattice cell. Row and Col are 1-indexed.
type Site struct {
	Row, Col int
}

// Index maps s to its row-major site index in [1, n²] for an n×n lattice.
// It does not validate bounds.
func (s Site) Index(n int) int {
	return (s.Row-1)*n + s.Col
}

// String renders s as "(row,col)".
func (s Site) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// gridErrorf attaches operation and coordinate context to err.
func gridErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}

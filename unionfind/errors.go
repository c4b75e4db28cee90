package unionfind

import "errors"

var (
	// ErrNegativeSize indicates New was called with a negative element count.
	ErrNegativeSize = errors.New("unionfind: element count must be non-negative")
	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// SPDX-License-Identifier: MIT

package stats

import "errors"

// ErrInvalidArgument indicates a trial count <= 0, a lattice size outside
// [1, percolation.MaxSize] or a nil Source.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* reject input */ }.
var ErrInvalidArgument = errors.New("stats: invalid lattice size or trial count")

// ErrTrialComplete indicates Step was called after the trial percolated.
var ErrTrialComplete = errors.New("stats: trial already percolated")

// ErrUnknownStrategy indicates an unrecognised sampling strategy name.
var ErrUnknownStrategy = errors.New("stats: unknown sampling strategy")

package mobius

import "errors"

// ErrInvalidParameter is returned when R ≤ 0, W ≤ 0 or N < 2.
// The caller has to supply corrected parameters; nothing is retried.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrPrecomputeRequired is returned when a scalar result is requested
// from a Model whose mesh has not been generated yet.
// Call GenerateMesh first.
var ErrPrecomputeRequired = errors.New("mesh not generated")

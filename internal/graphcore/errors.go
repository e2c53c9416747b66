package graphcore

import "errors"

// Sentinel errors surfaced by the core, matching the error kinds in
// spec.md §7. Callers should use errors.Is against these, not string
// matching.
var (
	ErrInvalidArgument = errors.New("graphcore: invalid argument")
	ErrOverflow        = errors.New("graphcore: overflow")
	ErrUnimplemented   = errors.New("graphcore: unimplemented")
	ErrInterrupted     = errors.New("graphcore: interrupted")
)

package generator

import errors "gopkg.in/src-d/go-errors.v1"

// ErrAttemptsExceeded is returned when Generate's outer retry loop hits
// its attempt bound without producing a logic-solvable puzzle.
var ErrAttemptsExceeded = errors.NewKind("generator: exceeded %d attempts without a logic-solvable puzzle")

// ErrEmitExhausted is returned when random rule emission repeatedly
// produces ill-formed expressions (e.g. one whose variables all cancel)
// without ever yielding a well-formed rule.
var ErrEmitExhausted = errors.NewKind("generator: could not emit a well-formed rule after %d tries: %s")

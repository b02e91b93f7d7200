package bbll

import "errors"

// ErrInvariantViolation is returned by CheckInvariants when a
// structural property from spec.md §8 no longer holds. Per spec.md §7
// this class of error is fatal to the enclosing run: callers should
// treat it as unrecoverable rather than retry.
var ErrInvariantViolation = errors.New("bbll: invariant violation")

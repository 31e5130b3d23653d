package trie

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get and Remove when the requested key is
// absent. Per spec.md §7 this is ordinary control flow, not a panic-
// class error; callers should compare with errors.Is.
var ErrNotFound = errors.New("trie: key not found")

// EncodingFailure wraps an error surfaced by the KeyEncoder or
// ValueEncoder capabilities, or by the RLP writer producing an
// ill-formed encoding, per spec.md §7.
type EncodingFailure struct {
	Op  string
	Err error
}

func (e *EncodingFailure) Error() string {
	return fmt.Sprintf("trie: %s encoding failed: %v", e.Op, e.Err)
}

func (e *EncodingFailure) Unwrap() error { return e.Err }

// InvariantViolation signals that the arena reached a state I1-I6
// forbid under well-formed inputs (spec.md §7: "Must never be
// reachable ... implementations should treat this as a fatal program
// error"). It is never returned as an error value; raiseInvariant
// panics with one.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return "trie: invariant violation: " + e.Detail
}

package offsettree

import "errors"

// Errors returned by Tree operations.
var (
	// ErrIndexOutOfBound indicates a line number outside the range an
	// operation permits.
	ErrIndexOutOfBound = errors.New("offsettree: line number out of bound")

	// ErrInvalidUTF8 indicates the buffer passed to New is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("offsettree: invalid utf-8")

	// ErrEmptyBuffer indicates New was called with an empty buffer; the
	// tree always indexes at least line 0, so an empty input is rejected
	// rather than silently producing a zero-line tree.
	ErrEmptyBuffer = errors.New("offsettree: buffer must not be empty")

	// ErrInvariantViolation is wrapped by Check and, when debug-mode
	// invariant checking is enabled (WithDebugInvariants), by any mutator
	// that leaves the tree in a state Check rejects.
	ErrInvariantViolation = errors.New("offsettree: invariant violation")
)

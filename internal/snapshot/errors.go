package snapshot

import "errors"

var (
	// ErrMissingLines indicates a snapshot document has no "lines" array.
	ErrMissingLines = errors.New("snapshot: missing lines array")
)

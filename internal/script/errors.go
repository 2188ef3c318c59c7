package script

import "errors"

var (
	// ErrMissingFunction indicates a script does not define is_break.
	ErrMissingFunction = errors.New("script: is_break function not defined")

	// ErrEmptyBuffer indicates ScanLineStarts was called with no input.
	ErrEmptyBuffer = errors.New("script: empty buffer")
)

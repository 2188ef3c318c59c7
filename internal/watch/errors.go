package watch

import "errors"

var (
	// ErrAlreadyWatching is returned by Watch for a path already tracked.
	ErrAlreadyWatching = errors.New("watch: path already watched")
	// ErrNotWatching is returned by Unwatch/Lookup-adjacent calls for an
	// untracked path.
	ErrNotWatching = errors.New("watch: path not watched")
	// ErrRegistryClosed is returned by any call made after Close.
	ErrRegistryClosed = errors.New("watch: registry closed")
)

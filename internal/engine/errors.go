package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrUnknownMode indicates an editing mode name that is not emacs or vi.
	ErrUnknownMode = errors.New("unknown editing mode")
)

package history

import "errors"

// Errors returned by history operations.
var (
	// ErrPosition indicates a history position outside [0, Len()].
	ErrPosition = errors.New("history position out of range")

	// ErrNoFile indicates a file operation on a list with no path configured.
	ErrNoFile = errors.New("no history file configured")

	// ErrWatcherClosed indicates the watcher has already been stopped.
	ErrWatcherClosed = errors.New("history watcher closed")
)

package editor

import "errors"

var (
	// ErrInterrupted is returned when the line is interrupted with C-c.
	ErrInterrupted = errors.New("interrupted")

	// ErrUnknownAction is returned by Run for a command name with no
	// implementation.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNotReading is returned by Feed when no line is being read.
	ErrNotReading = errors.New("no line is being read")
)

package script

import (
	"errors"
	"fmt"
)

// Errors for script operations.
var (
	// ErrStateClosed is returned when running code on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrUnknownOption is returned by keyline.set for an unknown option.
	ErrUnknownOption = errors.New("unknown option")
)

// Error reports a failure while running a script.
type Error struct {
	// Path is the script file, or "<string>" for inline code.
	Path string
	// Err is the underlying Lua or host error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

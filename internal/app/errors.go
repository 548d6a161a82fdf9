package app

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrAlreadyRunning indicates Run was called on a running session.
	ErrAlreadyRunning = errors.New("session already running")

	// ErrClosed indicates the session has been shut down.
	ErrClosed = errors.New("session closed")

	// ErrUnknownBackend indicates an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown backend")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op      string // Operation name (e.g., "load", "save", "watch")
	Target  string // Target of the operation (e.g., file path)
	Context string // Additional context
	Err     error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

// WithContext adds context to the error.
// Safe to call on nil receiver - returns nil.
func (e *OperationError) WithContext(ctx string) *OperationError {
	if e == nil {
		return nil
	}
	e.Context = ctx
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Context != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Context)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// ErrorList collects multiple errors.
// It is not safe for concurrent use.
type ErrorList struct {
	errors []error
}

// Add adds an error to the list. Nil errors are ignored.
func (e *ErrorList) Add(err error) {
	if err != nil {
		e.errors = append(e.errors, err)
	}
}

// Len returns the number of errors.
func (e *ErrorList) Len() int {
	return len(e.errors)
}

// Error returns a combined error message.
func (e *ErrorList) Error() string {
	if e == nil || len(e.errors) == 0 {
		return ""
	}
	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}
	return fmt.Sprintf("%d errors: first: %v", len(e.errors), e.errors[0])
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *ErrorList) Unwrap() []error {
	return e.errors
}

// AsError returns nil if there are no errors, otherwise returns the ErrorList.
func (e *ErrorList) AsError() error {
	if len(e.errors) == 0 {
		return nil
	}
	return e
}

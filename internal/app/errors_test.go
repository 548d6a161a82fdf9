package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "save"},
			expected: "save",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "load history", Target: "/tmp/hist"},
			expected: "load history /tmp/hist",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "save history", Target: "/tmp/hist", Context: "on accept", Err: errors.New("disk full")},
			expected: "save history /tmp/hist (on accept): disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	err := NewOperationError("load history", "/nope", fs.ErrNotExist).WithContext("startup")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is to match the wrapped error")
	}

	var nilErr *OperationError
	if nilErr.Unwrap() != nil || nilErr.WithContext("x") != nil {
		t.Error("nil receiver should stay nil")
	}
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "backend", Err: ErrUnknownBackend}
	if err.Error() != "initializing backend: unknown backend" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrUnknownBackend) {
		t.Error("expected errors.Is to match ErrUnknownBackend")
	}
}

func TestErrorList(t *testing.T) {
	var list ErrorList
	if list.AsError() != nil {
		t.Error("empty list should be nil")
	}

	list.Add(nil)
	list.Add(ErrClosed)
	if list.Len() != 1 || list.Error() != ErrClosed.Error() {
		t.Errorf("one error: %q", list.Error())
	}

	list.Add(fs.ErrPermission)
	err := list.AsError()
	if err == nil || err.Error() != "2 errors: first: session closed" {
		t.Errorf("two errors: %v", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should find every member")
	}
}

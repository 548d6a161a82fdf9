package engine

import (
	"fmt"
	"strings"
)

// Mode is the editing mode that governs undo behaviour on history loads.
type Mode uint8

const (
	ModeEmacs Mode = iota
	ModeVi
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeVi:
		return "vi"
	default:
		return "emacs"
	}
}

// ParseMode converts "emacs" or "vi" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "emacs":
		return ModeEmacs, nil
	case "vi":
		return ModeVi, nil
	default:
		return ModeEmacs, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithMode sets the editing mode.
func WithMode(m Mode) Option {
	return func(e *Engine) {
		e.mode = m
	}
}

package editor

import (
	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/input/keymap"
	"github.com/dshills/keyline/internal/search"
)

// Option configures an Editor.
type Option func(*Editor)

// WithEditingMode starts the editor in emacs or vi mode.
func WithEditingMode(m engine.Mode) Option {
	return func(e *Editor) {
		e.mode = m
	}
}

// WithKeymaps uses r for key lookup instead of a registry holding the
// default keymaps.
func WithKeymaps(r *keymap.Registry) Option {
	return func(e *Editor) {
		if r != nil {
			e.keys = r
		}
	}
}

// WithLogger sets the editor's logger. It is passed on to the search
// engine.
func WithLogger(logger Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSearchOptions passes options through to the search engine.
func WithSearchOptions(opts ...search.Option) Option {
	return func(e *Editor) {
		e.searchOpts = append(e.searchOpts, opts...)
	}
}

// WithBracketedPaste enables bracketed paste in the edit line.
func WithBracketedPaste(enabled bool) Option {
	return func(e *Editor) {
		e.bracketedPaste = enabled
	}
}

// WithOnAccept registers a function called with each accepted line after
// it has been added to history.
func WithOnAccept(fn func(line string)) Option {
	return func(e *Editor) {
		e.onAccept = fn
	}
}

// WithMetrics records activity into m.
func WithMetrics(m *Metrics) Option {
	return func(e *Editor) {
		if m != nil {
			e.metrics = m
		}
	}
}

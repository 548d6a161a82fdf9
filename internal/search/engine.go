package search

import "github.com/dshills/keyline/internal/engine/buffer"

// Engine runs history searches against one edit line.
// It is not safe for concurrent use.
type Engine struct {
	state *State

	line *buffer.Line
	hist History
	swap Swapper
	in   Input
	disp Display

	logger Logger

	caseFold       bool
	activeRegion   bool
	bracketedPaste bool
	callback       bool
}

// New creates a search engine.
func New(line *buffer.Line, hist History, swap Swapper, in Input, disp Display, opts ...Option) *Engine {
	e := &Engine{
		state:          NewState(),
		line:           line,
		hist:           hist,
		swap:           swap,
		in:             in,
		disp:           disp,
		logger:         nopLogger{},
		activeRegion:   true,
		bracketedPaste: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the engine's search state.
func (e *Engine) State() *State {
	return e.state
}

// Active reports whether a non-incremental search is reading its string.
func (e *Engine) Active() bool {
	return e.state.active != nil
}

// Scratch returns the search string being composed, or nil when no
// search is active.
func (e *Engine) Scratch() *buffer.Line {
	if e.state.active == nil {
		return nil
	}
	return e.state.active.scratch
}

// CaseFold reports whether substring search ignores case.
func (e *Engine) CaseFold() bool {
	return e.caseFold
}

// SetCaseFold changes case-insensitive matching.
func (e *Engine) SetCaseFold(fold bool) {
	e.caseFold = fold
}

// ActiveRegion reports whether matches are highlighted.
func (e *Engine) ActiveRegion() bool {
	return e.activeRegion
}

// SetActiveRegion changes match highlighting.
func (e *Engine) SetActiveRegion(enabled bool) {
	e.activeRegion = enabled
}

// SetCallbackMode switches between blocking and callback reading.
func (e *Engine) SetCallbackMode(enabled bool) {
	e.callback = enabled
}

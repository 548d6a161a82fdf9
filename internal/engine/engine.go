package engine

import (
	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/history"
)

// Engine couples the edit line with the history list.
// It is not safe for concurrent use.
type Engine struct {
	line *buffer.Line
	hist *history.List
	mode Mode

	// saved holds the in-progress line while history is being browsed.
	saved *buffer.Snapshot
}

// New creates an engine over line and hist.
func New(line *buffer.Line, hist *history.List, opts ...Option) *Engine {
	e := &Engine{
		line: line,
		hist: hist,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Line returns the edit line.
func (e *Engine) Line() *buffer.Line {
	return e.line
}

// History returns the history list.
func (e *Engine) History() *history.List {
	return e.hist
}

// Mode returns the editing mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// SetMode changes the editing mode.
func (e *Engine) SetMode(m Mode) {
	e.mode = m
}

// Previous moves count entries back in history and loads the line found
// there. It moves as far as possible and returns false only if it could
// not move at all. A negative count moves forward.
func (e *Engine) Previous(count int) bool {
	if count < 0 {
		return e.Next(-count)
	}
	if count == 0 {
		return true
	}

	e.saveIfAtEnd()

	var line string
	moved := false
	for i := 0; i < count; i++ {
		l, ok := e.hist.Previous()
		if !ok {
			break
		}
		line = l
		moved = true
	}
	if !moved {
		return false
	}

	e.load(line)
	return true
}

// Next moves count entries forward in history. Arriving at the
// past-the-end slot restores the line that was being edited before
// history browsing started. A negative count moves backward.
func (e *Engine) Next(count int) bool {
	if count < 0 {
		return e.Previous(-count)
	}
	if count == 0 {
		return true
	}

	var line string
	moved := false
	for i := 0; i < count; i++ {
		l, ok := e.hist.Next()
		if !ok {
			break
		}
		line = l
		moved = true
	}
	if !moved {
		return false
	}

	if e.hist.Position() == e.hist.Len() {
		e.restoreSaved()
		return true
	}
	e.load(line)
	return true
}

// MakeCurrent loads the history line at newpos into the edit line,
// walking from curpos so the saved in-progress line is kept. The caller
// guarantees newpos is a valid history position. Point is clamped into
// the new line.
func (e *Engine) MakeCurrent(curpos, newpos int) {
	e.hist.SetPosition(curpos)

	switch {
	case newpos < curpos:
		e.Previous(curpos - newpos)
	case newpos > curpos:
		e.Next(newpos - curpos)
	default:
		if line, ok := e.hist.At(newpos); ok {
			e.load(line)
		}
	}

	e.line.FixPoint()
	if e.mode == ModeVi {
		e.line.DiscardUndo()
	}
}

// Saved returns the in-progress line stashed while browsing history.
func (e *Engine) Saved() *buffer.Snapshot {
	return e.saved
}

// ClearSaved drops the stashed in-progress line.
func (e *Engine) ClearSaved() {
	e.saved = nil
}

// Reset prepares for a new input line: the edit line is emptied, the
// history cursor moves past the end, and any stashed line is dropped.
func (e *Engine) Reset() {
	e.line.Reset()
	e.hist.SetPosition(e.hist.Len())
	e.saved = nil
}

func (e *Engine) saveIfAtEnd() {
	if e.hist.Position() >= e.hist.Len() {
		e.saved = e.line.Snapshot()
	}
}

func (e *Engine) restoreSaved() {
	if e.saved == nil {
		e.line.SetText("")
		return
	}
	e.line.Restore(e.saved)
	e.saved = nil
}

// load replaces the edit line with text, point at the end and mark at the
// start.
func (e *Engine) load(text string) {
	e.line.DeactivateMark()
	e.line.BeginUndoGroup()
	e.line.SetText(text)
	e.line.EndUndoGroup()
	if e.mode == ModeVi {
		e.line.DiscardUndo()
	}
}

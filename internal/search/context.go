package search

import "github.com/dshills/keyline/internal/engine/buffer"

// Context is a non-incremental search in progress. It exists from Begin
// until the search finishes or is aborted.
type Context struct {
	Direction int
	Reverse   bool

	// Pattern selects glob matching (vi "/" and "?").
	Pattern bool

	// PromptSaved is set while the search prompt replaces the editor's.
	PromptSaved bool

	// Edit line state when the search began.
	SavePoint int
	SaveMark  int
	SaveLine  int

	HistoryPos int

	// LastChar is the last unit inserted by quoted insert.
	LastChar string

	// scratch holds the search string being composed.
	scratch *buffer.Line
}

// Scratch returns the line holding the search string being typed.
func (c *Context) Scratch() *buffer.Line {
	return c.scratch
}

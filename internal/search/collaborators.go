package search

import (
	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/input/key"
)

// History is the history store the engine searches.
type History interface {
	Len() int
	Position() int
	SetPosition(pos int) bool
	At(i int) (string, bool)
	// SubstringMatch reports the match offset and the matched byte
	// length within the line.
	SubstringMatch(needle string, dir int, anchored, fold bool) (offset, length int, ok bool)
	PatternSearch(pattern string, dir int, anchored bool) (int, bool)
}

// Swapper replaces the edit line with history lines.
type Swapper interface {
	// MakeCurrent loads the line at newpos, walking from curpos.
	MakeCurrent(curpos, newpos int)
	Previous(count int) bool
	Next(count int) bool
	Mode() engine.Mode
}

// Input supplies keys while the search string is read.
type Input interface {
	// ReadKey returns the next key. io.EOF means no more input.
	ReadKey() (key.Event, error)

	// ReadRaw returns the next key with no interpretation. It also returns
	// a key pushed back by ReadPastePrefix.
	ReadRaw() (key.Event, error)

	// Pending returns the number of input units already buffered.
	Pending() int

	// ReadPastePrefix is called after an Escape. It consumes the rest of a
	// bracketed-paste start marker and returns true, or pushes the Escape
	// back and returns false.
	ReadPastePrefix() bool

	// ReadPaste returns the pasted text up to the end marker.
	ReadPaste() (string, error)
}

// Display shows the prompt and line and reports failures.
type Display interface {
	Redisplay(line *buffer.Line)
	Ding()
	Message(msg string)
	ClearMessage()
	SavePrompt()
	RestorePrompt()
	SetPrompt(prompt string)
	Prompt() string
}

// Logger is the logging interface used by the engine.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

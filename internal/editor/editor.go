package editor

import (
	"errors"
	"io"
	"time"

	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/history"
	"github.com/dshills/keyline/internal/input/key"
	"github.com/dshills/keyline/internal/input/keymap"
	"github.com/dshills/keyline/internal/search"
)

// Input is the key source the editor reads from.
type Input interface {
	search.Input
}

// Display shows the edit line. Newline ends the edit row once a line is
// finished.
type Display interface {
	search.Display
	Newline()
}

// Logger is the logging interface used by the editor.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Editor is an interactive line editor.
// It is not safe for concurrent use.
type Editor struct {
	line   *buffer.Line
	hist   *history.List
	eng    *engine.Engine
	search *search.Engine
	keys   *keymap.Registry

	in   Input
	disp Display

	logger     Logger
	metrics    *Metrics
	searchOpts []search.Option
	onAccept   func(string)

	mode           engine.Mode
	keymapMode     string
	bracketedPaste bool

	arg     argument
	lastCmd search.Command
	thisCmd search.Command

	reading bool
	done    bool
	result  string
	err     error
}

// New creates an editor over hist reading from in and drawing on disp.
func New(hist *history.List, in Input, disp Display, opts ...Option) (*Editor, error) {
	e := &Editor{
		line:           buffer.NewLine(),
		hist:           hist,
		in:             in,
		disp:           disp,
		logger:         nopLogger{},
		metrics:        NewMetrics(),
		bracketedPaste: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.keys == nil {
		e.keys = keymap.NewRegistry()
		if err := keymap.LoadDefaults(e.keys); err != nil {
			return nil, err
		}
	}

	e.eng = engine.New(e.line, hist, engine.WithMode(e.mode))
	sopts := append([]search.Option{search.WithLogger(e.logger)}, e.searchOpts...)
	e.search = search.New(e.line, hist, e.eng, in, disp, sopts...)
	e.keymapMode = e.initialKeymap()
	return e, nil
}

// Line returns the edit line.
func (e *Editor) Line() *buffer.Line {
	return e.line
}

// History returns the history list.
func (e *Editor) History() *history.List {
	return e.hist
}

// Search returns the search engine.
func (e *Editor) Search() *search.Engine {
	return e.search
}

// Keymaps returns the keymap registry.
func (e *Editor) Keymaps() *keymap.Registry {
	return e.keys
}

// Metrics returns the editor's activity counters.
func (e *Editor) Metrics() *Metrics {
	return e.metrics
}

// EditingMode returns emacs or vi.
func (e *Editor) EditingMode() engine.Mode {
	return e.mode
}

// SetEditingMode switches between emacs and vi. Vi mode starts in
// insertion mode.
func (e *Editor) SetEditingMode(m engine.Mode) {
	e.mode = m
	e.eng.SetMode(m)
	e.keymapMode = e.initialKeymap()
}

// KeymapMode returns the active keymap: emacs, vi-insert or vi-command.
func (e *Editor) KeymapMode() string {
	return e.keymapMode
}

// LastCommand returns the history search command run most recently, or
// search.CmdNone if the last command was something else.
func (e *Editor) LastCommand() search.Command {
	return e.lastCmd
}

// Bind binds spec to action in the active keymap, or in the keymap named
// by a "mode:" prefix on spec.
func (e *Editor) Bind(spec, action string) error {
	mode, keys := keymap.SplitSpec(spec, e.keymapMode)
	return e.keys.Bind(mode, keys, action)
}

func (e *Editor) initialKeymap() string {
	if e.mode == engine.ModeVi {
		return keymap.ModeViInsert
	}
	return keymap.ModeEmacs
}

// ReadLine displays prompt and edits a line until it is accepted. It
// returns io.EOF at end of input and ErrInterrupted when the line is
// interrupted.
func (e *Editor) ReadLine(prompt string) (string, error) {
	e.search.SetCallbackMode(false)
	e.begin(prompt)
	for {
		done, line, err := e.feed()
		if done {
			return line, err
		}
	}
}

// Begin starts reading a line in callback mode. Keys are then processed
// one at a time with Feed.
func (e *Editor) Begin(prompt string) {
	e.search.SetCallbackMode(true)
	e.begin(prompt)
}

// Feed reads and processes one key. When done is true, line and err hold
// the result ReadLine would have returned.
func (e *Editor) Feed() (done bool, line string, err error) {
	if !e.reading {
		return true, "", ErrNotReading
	}
	return e.feed()
}

// Reading reports whether a line is being read.
func (e *Editor) Reading() bool {
	return e.reading
}

func (e *Editor) begin(prompt string) {
	e.disp.SetPrompt(prompt)
	e.disp.ClearMessage()
	e.eng.Reset()
	e.keymapMode = e.initialKeymap()
	e.arg.reset()
	e.lastCmd = search.CmdNone
	e.reading = true
	e.done = false
	e.result = ""
	e.err = nil
	e.redisplay()
}

func (e *Editor) feed() (bool, string, error) {
	start := time.Now()

	if e.search.Active() {
		finished, err := e.search.Step()
		if finished {
			e.searchDone(err)
			e.redisplay()
		}
		e.metrics.RecordKey(time.Since(start))
		return false, "", nil
	}

	ev, err := e.in.ReadKey()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			e.logger.Warn("editor: read failed: %v", err)
		}
		e.finish("", err)
		return true, "", err
	}

	e.handleKey(ev)
	e.metrics.RecordKey(time.Since(start))

	if e.done {
		return true, e.result, e.err
	}
	e.redisplay()
	return false, "", nil
}

// finish ends the current line.
func (e *Editor) finish(line string, err error) {
	if e.search.Active() {
		e.search.SigCleanup()
	}
	e.reading = false
	e.done = true
	e.result = line
	e.err = err
	e.line.DeactivateMark()
	e.disp.Redisplay(e.line)
	e.disp.Newline()
}

func (e *Editor) redisplay() {
	if e.search.Active() {
		return
	}
	e.disp.Redisplay(e.line)
}

// handleKey resolves ev to a command and runs it.
func (e *Editor) handleKey(ev key.Event) {
	if ev.IsEscape() {
		var ok bool
		if ev, ok = e.escape(); !ok {
			return
		}
	}

	b, ok := e.keys.Lookup(e.keymapMode, ev)
	if !ok {
		if e.keymapMode != keymap.ModeViCommand && (ev.IsChar() || (ev.IsRune() && !ev.IsModified())) {
			e.dispatch(keymap.ActionSelfInsert, ev)
			return
		}
		e.metrics.RecordUnbound()
		e.logger.Debug("editor: %s is not bound in %s", ev, e.keymapMode)
		e.arg.reset()
		e.disp.Ding()
		return
	}
	e.dispatch(b.Action, ev)
}

// escape handles an Escape read from the input. A bracketed paste is
// inserted directly; in emacs mode the following key becomes a Meta key.
// ok is false when nothing else remains to dispatch.
func (e *Editor) escape() (key.Event, bool) {
	esc := key.NewSpecialEvent(key.KeyEscape, key.ModNone)

	if e.bracketedPaste && e.keymapMode != keymap.ModeViCommand && e.in.Pending() >= pastePrefixLen {
		if e.in.ReadPastePrefix() {
			e.paste()
			return esc, false
		}
		// Take back the Escape ReadPastePrefix pushed back.
		if _, err := e.in.ReadRaw(); err != nil {
			e.finish("", err)
			return esc, false
		}
	}

	if e.keymapMode != keymap.ModeEmacs {
		return esc, true
	}

	next, err := e.in.ReadKey()
	if err != nil {
		e.finish("", err)
		return esc, false
	}
	return key.Meta(next), true
}

// pastePrefixLen is what remains of a paste start marker after its Escape.
const pastePrefixLen = len("[200~")

func (e *Editor) paste() {
	text, err := e.in.ReadPaste()
	if err != nil {
		e.logger.Warn("editor: paste: %v", err)
	}
	e.arg.reset()
	e.lastCmd = search.CmdNone
	e.line.BeginUndoGroup()
	e.line.InsertText(text)
	e.line.EndUndoGroup()
}

// Run executes the named command as if its key had been typed with a
// numeric argument of count.
func (e *Editor) Run(action string, count int) error {
	if _, ok := actions[action]; !ok {
		return ErrUnknownAction
	}
	e.arg.reset()
	if count != 1 {
		if count < 0 {
			e.arg.negative = true
			count = -count
		}
		e.arg.value = count
		e.arg.set = true
	}
	e.dispatch(action, key.Event{})
	e.redisplay()
	return nil
}

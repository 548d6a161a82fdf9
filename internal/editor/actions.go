package editor

import (
	"errors"
	"io"

	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/history"
	"github.com/dshills/keyline/internal/input/key"
	"github.com/dshills/keyline/internal/input/keymap"
	"github.com/dshills/keyline/internal/search"
)

// call carries the key that invoked a command and its argument.
type call struct {
	ev     key.Event
	count  int
	hasArg bool
}

type actionFunc func(e *Editor, c call)

var actions map[string]actionFunc

func init() {
	actions = map[string]actionFunc{
		keymap.ActionSelfInsert:      (*Editor).selfInsert,
		keymap.ActionQuotedInsert:    (*Editor).quotedInsert,
		keymap.ActionAcceptLine:      (*Editor).acceptLine,
		keymap.ActionBackwardDelete:  (*Editor).backwardDeleteChar,
		keymap.ActionDeleteChar:      (*Editor).deleteChar,
		keymap.ActionWordRubout:      func(e *Editor, c call) { e.line.UnixWordRubout() },
		keymap.ActionLineDiscard:     func(e *Editor, c call) { e.line.UnixLineDiscard() },
		keymap.ActionBeginningOfLine: func(e *Editor, c call) { e.line.SetPoint(0) },
		keymap.ActionEndOfLine:       func(e *Editor, c call) { e.line.SetPoint(e.line.Len()) },
		keymap.ActionBackwardChar:    (*Editor).backwardChar,
		keymap.ActionForwardChar:     (*Editor).forwardChar,
		keymap.ActionPreviousHistory: (*Editor).previousHistory,
		keymap.ActionNextHistory:     (*Editor).nextHistory,
		keymap.ActionUndo:            (*Editor).undo,
		keymap.ActionAbort:           func(e *Editor, c call) { e.disp.Ding() },
		keymap.ActionInterrupt:       func(e *Editor, c call) { e.finish("", ErrInterrupted) },
		keymap.ActionEndOfFile:       func(e *Editor, c call) { e.finish("", io.EOF) },

		keymap.ActionNonincForwardSearch:      func(e *Editor, c call) { e.nonincSearch(history.Forward, 0) },
		keymap.ActionNonincReverseSearch:      func(e *Editor, c call) { e.nonincSearch(history.Backward, 0) },
		keymap.ActionNonincForwardSearchAgain: func(e *Editor, c call) { e.searchAgain(history.Forward, false) },
		keymap.ActionNonincReverseSearchAgain: func(e *Editor, c call) { e.searchAgain(history.Backward, false) },

		keymap.ActionHistorySearchForward:           (*Editor).historySearch,
		keymap.ActionHistorySearchBackward:          (*Editor).historySearch,
		keymap.ActionHistorySubstringSearchForward:  (*Editor).historySearch,
		keymap.ActionHistorySubstringSearchBackward: (*Editor).historySearch,

		keymap.ActionViSearch:        (*Editor).viSearch,
		keymap.ActionViSearchAgain:   (*Editor).viSearchAgain,
		keymap.ActionViMovementMode:  (*Editor).viMovementMode,
		keymap.ActionViInsertionMode: func(e *Editor, c call) { e.keymapMode = keymap.ModeViInsert },
		keymap.ActionViAppendMode:    (*Editor).viAppendMode,
		keymap.ActionViAppendEOL:     (*Editor).viAppendEOL,
		keymap.ActionViInsertBeg:     (*Editor).viInsertBeg,
		keymap.ActionViEditingMode:   func(e *Editor, c call) { e.SetEditingMode(engine.ModeVi) },
		keymap.ActionEmacsMode:       func(e *Editor, c call) { e.SetEditingMode(engine.ModeEmacs) },
	}
}

// dispatch runs action for ev, consuming the numeric argument. The
// argument commands only accumulate it.
func (e *Editor) dispatch(action string, ev key.Event) {
	switch action {
	case keymap.ActionDigitArgument:
		e.digitArgument(ev)
		return
	case keymap.ActionViArgDigit:
		if ev.Rune != '0' || e.arg.set {
			e.digitArgument(ev)
			return
		}
		action = keymap.ActionBeginningOfLine
	}

	fn, ok := actions[action]
	if !ok {
		e.logger.Warn("editor: no implementation for %q", action)
		e.disp.Ding()
		return
	}

	c := call{ev: ev, count: e.arg.count(), hasArg: e.arg.set}
	if c.hasArg {
		e.disp.ClearMessage()
	}
	e.arg.reset()

	e.thisCmd = search.CommandFromName(action)
	e.metrics.RecordAction()
	fn(e, c)
	e.lastCmd = e.thisCmd

	if !isSearchAction(action) {
		e.line.DeactivateMark()
	}
}

func isSearchAction(action string) bool {
	switch action {
	case keymap.ActionNonincForwardSearch, keymap.ActionNonincReverseSearch,
		keymap.ActionNonincForwardSearchAgain, keymap.ActionNonincReverseSearchAgain,
		keymap.ActionViSearch, keymap.ActionViSearchAgain:
		return true
	}
	return false
}

func (e *Editor) digitArgument(ev key.Event) {
	switch {
	case ev.Rune == '-':
		e.arg.minus()
	case ev.Rune >= '0' && ev.Rune <= '9':
		e.arg.digit(int(ev.Rune - '0'))
	default:
		e.disp.Ding()
		return
	}
	e.disp.Message(e.arg.String())
}

func (e *Editor) selfInsert(c call) {
	if c.ev.Rune == 0 {
		return
	}
	for i := 0; i < c.count; i++ {
		e.line.InsertRune(c.ev.Rune)
	}
}

func (e *Editor) quotedInsert(c call) {
	ev, err := e.in.ReadRaw()
	if err != nil {
		e.disp.Ding()
		return
	}
	text := ev.Literal()
	if text == "" {
		e.disp.Ding()
		return
	}
	for i := 0; i < c.count; i++ {
		e.line.InsertText(text)
	}
}

func (e *Editor) acceptLine(c call) {
	text := e.line.Text()
	e.hist.Add(text)
	e.metrics.RecordAccept()
	if e.onAccept != nil {
		e.onAccept(text)
	}
	e.finish(text, nil)
}

func (e *Editor) backwardDeleteChar(c call) {
	if c.count < 0 {
		e.deleteChar(call{ev: c.ev, count: -c.count})
		return
	}
	e.repeat(c.count, e.line.DeleteBack)
}

func (e *Editor) deleteChar(c call) {
	// C-d on an empty line ends input.
	if c.ev.IsCtrl('d') && e.line.Len() == 0 && !c.hasArg {
		e.finish("", io.EOF)
		return
	}
	if c.count < 0 {
		e.backwardDeleteChar(call{ev: c.ev, count: -c.count})
		return
	}
	e.repeat(c.count, e.line.DeleteForward)
}

func (e *Editor) backwardChar(c call) {
	if c.count < 0 {
		e.repeat(-c.count, e.line.ForwardChar)
		return
	}
	e.repeat(c.count, e.line.BackwardChar)
}

func (e *Editor) forwardChar(c call) {
	if c.count < 0 {
		e.repeat(-c.count, e.line.BackwardChar)
		return
	}
	e.repeat(c.count, e.line.ForwardChar)
}

// repeat calls fn n times, ringing the bell if it fails before the first
// success.
func (e *Editor) repeat(n int, fn func() bool) {
	for i := 0; i < n; i++ {
		if !fn() {
			if i == 0 {
				e.disp.Ding()
			}
			return
		}
	}
}

func (e *Editor) previousHistory(c call) {
	if !e.eng.Previous(c.count) {
		e.disp.Ding()
		return
	}
	e.historyPoint()
}

func (e *Editor) nextHistory(c call) {
	if !e.eng.Next(c.count) {
		e.disp.Ding()
		return
	}
	e.historyPoint()
}

// historyPoint places point after a history move: at the end of the line,
// or at its start in vi command mode.
func (e *Editor) historyPoint() {
	if e.keymapMode == keymap.ModeViCommand {
		e.line.SetPoint(0)
	}
}

func (e *Editor) undo(c call) {
	for i := 0; i < c.count; i++ {
		if err := e.line.Undo(); err != nil {
			if errors.Is(err, buffer.ErrNothingToUndo) {
				e.disp.Ding()
				return
			}
			e.logger.Warn("editor: undo: %v", err)
			return
		}
	}
}

func (e *Editor) nonincSearch(dir int, pchar rune) {
	e.startSearch(dir, pchar, false)
}

func (e *Editor) startSearch(dir int, pchar rune, pattern bool) {
	var err error
	if pattern {
		err = e.search.PatternSearch(dir, pchar)
	} else {
		err = e.search.Search(dir, pchar)
	}
	if e.search.Active() {
		// Callback mode: Feed finishes it.
		return
	}
	e.searchDone(err)
}

func (e *Editor) searchAgain(dir int, pattern bool) {
	e.searchDone(e.search.Again(dir, pattern))
}

// searchDone records the outcome of a non-incremental search. Misses and
// aborts were already reported to the user by the search engine.
func (e *Editor) searchDone(err error) {
	switch {
	case err == nil:
		e.metrics.RecordSearch(false, false)
	case errors.Is(err, search.ErrAborted):
		e.metrics.RecordSearch(false, true)
		e.logger.Debug("editor: search aborted")
	case errors.Is(err, search.ErrNotFound):
		e.metrics.RecordSearch(true, false)
		e.logger.Debug("editor: search: %v", err)
	default:
		e.logger.Warn("editor: search: %v", err)
	}
}

func (e *Editor) historySearch(c call) {
	err := e.search.HistorySearch(e.thisCmd, c.count, e.lastCmd)
	if err != nil && !errors.Is(err, search.ErrNotFound) {
		e.logger.Warn("editor: %s: %v", e.thisCmd, err)
	}
}

// viSearch starts a search: "/" searches older lines and "?" newer
// ones. Only command mode matches patterns.
func (e *Editor) viSearch(c call) {
	pattern := e.keymapMode == keymap.ModeViCommand
	switch c.ev.Rune {
	case '?':
		e.startSearch(history.Forward, '?', pattern)
	default:
		e.startSearch(history.Backward, '/', pattern)
	}
}

// viSearchAgain repeats the last search: "n" toward older lines and "N"
// toward newer ones. Both match as patterns in command mode.
func (e *Editor) viSearchAgain(c call) {
	pattern := e.keymapMode == keymap.ModeViCommand
	switch c.ev.Rune {
	case 'N':
		e.searchAgain(history.Forward, pattern)
	default:
		e.searchAgain(history.Backward, pattern)
	}
}

func (e *Editor) viMovementMode(c call) {
	e.keymapMode = keymap.ModeViCommand
	e.line.BackwardChar()
}

func (e *Editor) viAppendMode(c call) {
	e.line.ForwardChar()
	e.keymapMode = keymap.ModeViInsert
}

func (e *Editor) viAppendEOL(c call) {
	e.line.SetPoint(e.line.Len())
	e.keymapMode = keymap.ModeViInsert
}

func (e *Editor) viInsertBeg(c call) {
	e.line.SetPoint(0)
	e.keymapMode = keymap.ModeViInsert
}

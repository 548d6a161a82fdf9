package search

import (
	"errors"
	"io"

	"github.com/dshills/keyline/internal/engine/buffer"
	"github.com/dshills/keyline/internal/input/key"
)

// DefaultPrompt is shown while reading a search string.
const DefaultPrompt = ':'

// pastePrefixLen is the length of the bracketed-paste start marker.
const pastePrefixLen = len("\x1b[200~")

type dispatchResult int

const (
	dispatchContinue dispatchResult = iota
	dispatchDone
	dispatchAbort
)

// Search runs a non-incremental substring search. dir < 0 searches older
// lines. pchar is the prompt character, 0 uses DefaultPrompt.
//
// In callback mode Search returns nil once the prompt is up, and keys are
// fed through Step.
func (e *Engine) Search(dir int, pchar rune) error {
	return e.run(dir, pchar, false)
}

// PatternSearch is Search with glob matching, as vi command mode's "/"
// and "?" do.
func (e *Engine) PatternSearch(dir int, pchar rune) error {
	return e.run(dir, pchar, true)
}

func (e *Engine) run(dir int, pchar rune, pattern bool) error {
	if err := e.begin(dir, pchar, pattern); err != nil {
		return err
	}
	if e.callback {
		return nil
	}
	for {
		done, err := e.Step()
		if done {
			return err
		}
	}
}

// Begin starts a non-incremental substring search: it saves the edit
// line, shows the search prompt and empties the scratch string.
func (e *Engine) Begin(dir int, pchar rune) error {
	return e.begin(dir, pchar, false)
}

func (e *Engine) begin(dir int, pchar rune, pattern bool) error {
	if e.state.active != nil {
		return ErrSearchActive
	}

	ctx := &Context{
		Direction: dir,
		Reverse:   dir < 0,
		Pattern:   pattern,
		SavePoint: e.line.Point(),
		SaveMark:  e.line.Mark(),
		SaveLine:  e.hist.Position(),
		scratch:   buffer.NewLine(),
	}
	ctx.HistoryPos = ctx.SaveLine

	e.state.saved = e.line.Snapshot()

	if pchar == 0 {
		pchar = DefaultPrompt
	}
	e.disp.SavePrompt()
	e.disp.SetPrompt(string(pchar))
	ctx.PromptSaved = true

	e.state.active = ctx
	e.logger.Debug("search begin dir=%d pattern=%v pos=%d", dir, ctx.Pattern, ctx.SaveLine)

	e.disp.Redisplay(ctx.scratch)
	return nil
}

// Step reads and handles one key of the active search. It reports done
// when the search has finished, and then the error is the search result.
func (e *Engine) Step() (done bool, err error) {
	ctx := e.state.active
	if ctx == nil {
		return true, ErrNoSearch
	}

	ev, err := e.in.ReadKey()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			e.logger.Warn("search input: %v", err)
		}
		e.abort(ctx, "end of input")
		return true, ErrAborted
	}

	if ev.IsNul() {
		return true, e.finish(ctx)
	}

	switch e.dispatch(ctx, ev) {
	case dispatchDone:
		return true, e.finish(ctx)
	case dispatchAbort:
		return true, ErrAborted
	}
	return false, nil
}

// dispatch applies one key to the scratch string.
func (e *Engine) dispatch(ctx *Context, ev key.Event) dispatchResult {
	s := ctx.scratch

	switch {
	case ev.IsCtrl('w'):
		s.UnixWordRubout()

	case ev.IsCtrl('u'):
		s.UnixLineDiscard()

	case ev.IsCtrl('q'), ev.IsCtrl('v'):
		raw, err := e.in.ReadRaw()
		if err != nil {
			e.abort(ctx, "quoted insert failed")
			return dispatchAbort
		}
		s.InsertText(raw.Literal())
		if s.Point() > 0 {
			ctx.LastChar = s.LastUnit()
		} else if s.Len() > 0 {
			ctx.LastChar = s.Text()[:1]
		}

	case ev.IsEnter():
		return dispatchDone

	case ev.IsRubout():
		if s.Point() == 0 {
			e.abort(ctx, "rubout at start")
			return dispatchAbort
		}
		s.DeleteBack()

	case ev.IsInterrupt():
		e.abort(ctx, "interrupted")
		return dispatchAbort

	case ev.IsEscape():
		e.insertEscape(s)

	default:
		s.InsertText(ev.Literal())
	}

	e.disp.Redisplay(s)
	s.DeactivateMark()
	return dispatchContinue
}

// insertEscape handles an Escape while reading: enough buffered input
// suggests a bracketed paste is arriving, otherwise Escape is inserted.
func (e *Engine) insertEscape(s *buffer.Line) {
	if !e.bracketedPaste || e.in.Pending() < pastePrefixLen-1 {
		s.InsertText("\x1b")
		return
	}

	if e.in.ReadPastePrefix() {
		text, err := e.in.ReadPaste()
		if err != nil {
			e.logger.Warn("bracketed paste: %v", err)
		}
		s.InsertText(text)
		return
	}

	// The Escape was pushed back.
	ev, err := e.in.ReadRaw()
	if err != nil {
		s.InsertText("\x1b")
		return
	}
	s.InsertText(ev.Literal())
}

// finish runs the search once the string has been read.
func (e *Engine) finish(ctx *Context) error {
	ctx.scratch.DiscardUndo()

	if ctx.scratch.Len() == 0 {
		if !e.state.hasLastSearch {
			e.restoreSaved()
			e.disp.Ding()
			e.restorePrompt(ctx)
			e.cleanup()
			e.logger.Debug("search: no previous search string")
			return ErrNoSearchString
		}
	} else {
		e.state.lastFound = ctx.SaveLine
		e.state.SetLastSearch(ctx.scratch.Text())
	}

	e.restorePrompt(ctx)
	e.restoreSaved()

	err := e.dosearch(e.state.lastSearch, ctx.Direction, ctx.Pattern)
	if err != nil {
		e.line.SetPoint(ctx.SavePoint)
		e.line.SetMark(ctx.SaveMark)
	}
	e.cleanup()
	return err
}

// abort abandons the active search and puts everything back.
func (e *Engine) abort(ctx *Context, reason string) {
	e.restoreSaved()
	e.line.SetPoint(ctx.SavePoint)
	e.line.SetMark(ctx.SaveMark)
	e.restorePrompt(ctx)
	e.disp.ClearMessage()
	e.line.FixPoint()
	e.disp.Ding()
	e.cleanup()
	e.logger.Debug("search aborted: %s", reason)
}

// SigCleanup abandons an active search after an interrupt that bypassed
// normal key handling. The prompt is restored even if nothing else was.
func (e *Engine) SigCleanup() {
	ctx := e.state.active
	if ctx == nil {
		return
	}
	e.restorePrompt(ctx)
	e.restoreSaved()
	e.cleanup()
}

func (e *Engine) restorePrompt(ctx *Context) {
	if ctx.PromptSaved {
		e.disp.RestorePrompt()
	}
	ctx.PromptSaved = false
}

// restoreSaved puts the edit line back to its state at Begin and drops the
// snapshot. It does not redisplay.
func (e *Engine) restoreSaved() {
	if e.state.saved == nil {
		return
	}
	e.line.Restore(e.state.saved)
	e.state.saved = nil
}

func (e *Engine) cleanup() {
	e.state.active = nil
	e.state.saved = nil
}

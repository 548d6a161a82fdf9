// Package engine binds the line being edited to the command history.
//
// The Engine owns a buffer.Line and a history.List and implements the
// movement commands that replace the line with a history entry: walking
// backward and forward through history, and jumping directly from one
// history position to another once a search has found a match.
//
// Leaving the past-the-end slot saves the in-progress line; walking back
// onto it restores that line.
//
// # Editing modes
//
// In emacs mode loading a history line is an ordinary undoable edit. In vi
// mode the undo log is discarded after each load, so a loaded line starts
// with an empty undo history.
//
// # Basic Usage
//
//	line := buffer.NewLine()
//	hist := history.NewList()
//	e := engine.New(line, hist, engine.WithMode(engine.ModeVi))
//
//	hist.Add("make test")
//	e.Previous(1) // line now holds "make test"
package engine

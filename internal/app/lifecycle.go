package app

import (
	"errors"
	"io"

	"github.com/dshills/keyline/internal/editor"
)

// Run reads lines until end of input, echoing each accepted line above
// the prompt. An interrupted line is discarded and reading continues.
func (s *Session) Run() error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	for {
		line, err := s.editor.ReadLine(s.prompt)
		switch {
		case err == nil:
			s.backend.Println(line)
		case errors.Is(err, editor.ErrInterrupted):
			s.logger.Debug("line interrupted")
		case errors.Is(err, io.EOF):
			s.logger.Info("end of input")
			return nil
		default:
			return NewOperationError("read line", "", err)
		}
	}
}

// saveHistory persists the history after each accepted line.
func (s *Session) saveHistory(line string) {
	if s.histPath == "" {
		return
	}

	var err error
	if s.watcher != nil {
		err = s.watcher.Save()
	} else {
		err = s.hist.SaveFile(s.histPath)
	}
	if err != nil {
		s.logger.Warn("%v", NewOperationError("save history", s.histPath, err).WithContext("on accept"))
	}
}

// Shutdown stops the watcher, saves the history, restores the terminal
// and clears the search state. It is safe to call more than once.
func (s *Session) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var errs ErrorList
	if s.watcher != nil {
		errs.Add(s.watcher.Close())
	}
	if s.histPath != "" && s.hist != nil {
		if err := s.hist.SaveFile(s.histPath); err != nil {
			errs.Add(NewOperationError("save history", s.histPath, err))
		}
	}
	if s.script != nil {
		errs.Add(s.script.Close())
	}
	if s.backend != nil {
		errs.Add(s.backend.Close())
	}
	if s.editor != nil {
		stats := s.editor.Metrics().Snapshot()
		s.logger.Info("session ended: %d lines, %d searches (%d missed)",
			stats.LinesAccepted, stats.Searches, stats.SearchMisses)
		s.editor.Search().State().Reset()
	}
	if s.logOut != nil {
		errs.Add(s.logOut.Close())
	}
	return errs.AsError()
}

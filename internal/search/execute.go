package search

import (
	"strings"

	"github.com/dshills/keyline/internal/engine"
)

// match is a history hit: the line position, and the byte offset and
// length of the match within it.
type match struct {
	pos, offset, length int
}

// searchFrom looks for str starting at history position pos. A leading
// "^" anchors the match. The history cursor is left where it was.
func (e *Engine) searchFrom(str string, pos, dir int, pattern, fold bool) (match, bool) {
	if pos < 0 {
		return match{offset: -1}, false
	}

	old := e.hist.Position()
	if !e.hist.SetPosition(pos) {
		return match{offset: -1}, false
	}

	var m match
	var ok bool
	needle, anchored := splitAnchor(str)
	if pattern {
		m.offset, ok = e.hist.PatternSearch(needle, dir, anchored)
	} else {
		m.offset, m.length, ok = e.hist.SubstringMatch(needle, dir, anchored, fold)
	}
	if ok {
		m.pos = e.hist.Position()
	} else {
		m.offset = -1
	}

	e.hist.SetPosition(old)
	return m, ok
}

// dosearch searches for str from the last found position and loads the
// match into the edit line. On a miss the edit line is untouched.
func (e *Engine) dosearch(str string, dir int, pattern bool) error {
	if str == "" || e.state.lastFound < 0 {
		e.disp.Ding()
		return ErrNotFound
	}

	m, ok := e.searchFrom(str, e.state.lastFound+dir, dir, pattern, e.caseFold && !pattern)
	if !ok {
		e.disp.ClearMessage()
		e.disp.Ding()
		e.logger.Debug("search %q: no match", str)
		return ErrNotFound
	}

	oldpos := e.hist.Position()
	e.state.lastFound = m.pos
	e.swap.MakeCurrent(oldpos, m.pos)
	if e.swap.Mode() == engine.ModeVi {
		e.hist.SetPosition(m.pos)
	}

	if e.activeRegion && !pattern && m.offset >= 0 && m.offset < e.line.Len() {
		e.line.SetPoint(m.offset)
		e.line.SetMark(m.offset + m.length)
		e.line.ActivateMark()
	} else {
		e.line.SetPoint(0)
		e.line.SetMark(e.line.Len())
	}

	e.disp.ClearMessage()
	e.logger.Debug("search %q: match at %d offset %d", str, m.pos, m.offset)
	return nil
}

func splitAnchor(str string) (string, bool) {
	if strings.HasPrefix(str, "^") {
		return str[1:], true
	}
	return str, false
}

package search

// Command identifies a history search command, so a run of repeated
// searches can keep its key.
type Command int

const (
	CmdNone Command = iota
	CmdHistorySearchForward
	CmdHistorySearchBackward
	CmdSubstringSearchForward
	CmdSubstringSearchBackward
)

var commandNames = map[Command]string{
	CmdNone:                    "none",
	CmdHistorySearchForward:    "history-search-forward",
	CmdHistorySearchBackward:   "history-search-backward",
	CmdSubstringSearchForward:  "history-substring-search-forward",
	CmdSubstringSearchBackward: "history-substring-search-backward",
}

// String returns the readline command name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// CommandFromName returns the command for a readline command name, or
// CmdNone.
func CommandFromName(name string) Command {
	for c, n := range commandNames {
		if n == name {
			return c
		}
	}
	return CmdNone
}

// Anchored reports whether the command matches only at line start.
func (c Command) Anchored() bool {
	return c == CmdHistorySearchForward || c == CmdHistorySearchBackward
}

// Forward reports whether the command searches toward newer lines.
func (c Command) Forward() bool {
	return c == CmdHistorySearchForward || c == CmdSubstringSearchForward
}

func (c Command) sameFamily(other Command) bool {
	if c == CmdNone || other == CmdNone {
		return false
	}
	return c.Anchored() == other.Anchored()
}

// HistorySearch moves count matches through history using the text left
// of the cursor as the key. last is the previously executed command; a
// new key is captured unless it was a command of the same family.
//
// With an empty key it behaves like previous-history or next-history.
// A negative count reverses the direction and zero does nothing.
func (e *Engine) HistorySearch(cmd Command, count int, last Command) error {
	if cmd == CmdNone || count == 0 {
		return nil
	}

	if !cmd.sameFamily(last) {
		e.reinit(cmd.Anchored())
	}

	if e.state.prefix.keyLen == 0 {
		var ok bool
		if cmd.Forward() {
			ok = e.swap.Next(count)
		} else {
			ok = e.swap.Previous(count)
		}
		if !ok {
			e.disp.Ding()
			return ErrNotFound
		}
		return nil
	}

	dir := -1
	if cmd.Forward() {
		dir = 1
	}
	if count < 0 {
		dir = -dir
		count = -count
	}
	return e.historySearch(count, dir)
}

// reinit captures a fresh key from the edit line.
func (e *Engine) reinit(anchored bool) {
	p := &e.state.prefix
	p.anchor = e.hist.Position()
	p.keyLen = e.line.Point()
	p.anchored = anchored
	p.lastMatched = ""
	p.hasLastMatched = false

	p.key = ""
	if p.keyLen > 0 {
		p.key = e.line.Text()[:p.keyLen]
		if anchored {
			p.key = "^" + p.key
		}
	}

	e.state.saved = nil
	e.logger.Debug("history search key %q anchored=%v from %d", p.key, anchored, p.anchor)
}

func (e *Engine) historySearch(count, dir int) error {
	p := &e.state.prefix
	oldpos := e.hist.Position()

	found := false
	col := -1
	for count > 0 {
		m, ok := e.searchFrom(p.key, p.anchor+dir, dir, false, false)
		col = m.offset
		if !ok {
			break
		}
		p.anchor = m.pos
		found = true

		text, _ := e.hist.At(m.pos)
		if p.hasLastMatched && p.lastMatched == text {
			continue
		}
		p.lastMatched = text
		p.hasLastMatched = true
		count--
	}

	if !found {
		e.disp.Ding()
		e.line.SetPoint(p.keyLen)
		e.line.SetMark(e.line.Len())
		return ErrNotFound
	}

	e.swap.MakeCurrent(oldpos, p.anchor)

	switch {
	case p.anchored:
		e.line.SetPoint(p.keyLen)
	case col >= 0:
		e.line.SetPoint(col)
	default:
		e.line.SetPoint(e.line.Len())
	}
	e.line.SetMark(e.line.Len())
	return nil
}

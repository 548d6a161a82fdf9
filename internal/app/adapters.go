package app

import (
	"fmt"

	"github.com/dshills/keyline/internal/script"
)

// scriptHost exposes a session's editor to Lua scripts.
type scriptHost struct {
	session *Session
}

func (h *scriptHost) Bind(spec, action string) error {
	return h.session.editor.Bind(spec, action)
}

func (h *scriptHost) Run(action string, count int) error {
	return h.session.editor.Run(action, count)
}

func (h *scriptHost) AddHistory(line string) {
	h.session.hist.Add(line)
}

func (h *scriptHost) LastSearch() (string, bool) {
	return h.session.editor.Search().State().LastSearch()
}

func (h *scriptHost) SetOption(name string, value bool) error {
	eng := h.session.editor.Search()
	switch name {
	case "case_fold":
		eng.SetCaseFold(value)
		h.session.cfg.Search.CaseFold = value
	case "active_region":
		eng.SetActiveRegion(value)
		h.session.cfg.Search.ActiveRegion = value
	default:
		return fmt.Errorf("%w %q", script.ErrUnknownOption, name)
	}
	return nil
}

var _ script.Host = (*scriptHost)(nil)

package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyline/internal/input/keymap"
)

// Host is the editor surface scripts drive.
type Host interface {
	// Bind binds a key spec, optionally prefixed with a keymap mode.
	Bind(spec, action string) error
	// Run executes a command with a numeric argument.
	Run(action string, count int) error
	// AddHistory appends a line to the history.
	AddHistory(line string)
	// LastSearch returns the last non-incremental search string.
	LastSearch() (string, bool)
	// SetOption sets a boolean search option.
	SetOption(name string, value bool) error
}

func (s *State) installModule() {
	mod := s.L.NewTable()
	s.L.SetFuncs(mod, map[string]lua.LGFunction{
		"bind":        s.bind,
		"history_add": s.historyAdd,
		"run":         s.runAction,
		"last_search": s.lastSearch,
		"set":         s.set,
		"actions":     s.actions,
		"log":         s.log,
	})
	s.L.SetGlobal("keyline", mod)
}

// bind(spec, action) -> nil
func (s *State) bind(L *lua.LState) int {
	spec := L.CheckString(1)
	action := L.CheckString(2)
	if spec == "" {
		L.ArgError(1, "key spec cannot be empty")
		return 0
	}
	if err := s.host.Bind(spec, action); err != nil {
		L.RaiseError("bind %q: %v", spec, err)
	}
	return 0
}

// history_add(line) -> nil
func (s *State) historyAdd(L *lua.LState) int {
	s.host.AddHistory(L.CheckString(1))
	return 0
}

// run(action [, count]) -> nil
func (s *State) runAction(L *lua.LState) int {
	action := L.CheckString(1)
	count := L.OptInt(2, 1)
	if err := s.host.Run(action, count); err != nil {
		L.RaiseError("run %q: %v", action, err)
	}
	return 0
}

// last_search() -> string | nil
func (s *State) lastSearch(L *lua.LState) int {
	str, ok := s.host.LastSearch()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(str))
	return 1
}

// set(option, value) -> nil
func (s *State) set(L *lua.LState) int {
	name := L.CheckString(1)
	value := L.CheckBool(2)
	if err := s.host.SetOption(name, value); err != nil {
		L.RaiseError("set %q: %v", name, err)
	}
	return 0
}

// actions() -> {string}
func (s *State) actions(L *lua.LState) int {
	tbl := L.NewTable()
	for _, name := range keymap.Actions() {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// log(message) -> nil
func (s *State) log(L *lua.LState) int {
	s.logger.Info("script: %s", L.CheckString(1))
	return 0
}

package search

import "github.com/dshills/keyline/internal/engine/buffer"

// State is the search state that outlives a single search. It belongs to
// an editor session and is cleared when the session ends.
type State struct {
	// Last non-incremental search string, kept with any leading "^".
	lastSearch    string
	hasLastSearch bool

	// History position of the last non-incremental match. It is the
	// anchor for search again and for reusing the previous string.
	lastFound int

	prefix prefixState

	// active is the non-incremental search reading its string, if any.
	active *Context

	// saved is the edit line as it was when the active search began.
	saved *buffer.Snapshot
}

// prefixState is the standing key of a run of history searches.
type prefixState struct {
	key      string
	keyLen   int
	anchor   int
	anchored bool

	lastMatched    string
	hasLastMatched bool
}

// NewState returns an empty search state.
func NewState() *State {
	return &State{}
}

// LastSearch returns the last non-incremental search string.
func (s *State) LastSearch() (string, bool) {
	return s.lastSearch, s.hasLastSearch
}

// SetLastSearch replaces the remembered search string. An empty string
// forgets it.
func (s *State) SetLastSearch(str string) {
	s.lastSearch = str
	s.hasLastSearch = str != ""
}

// LastFound returns the history position of the last non-incremental match.
func (s *State) LastFound() int {
	return s.lastFound
}

// Active returns the search currently reading its string.
func (s *State) Active() *Context {
	return s.active
}

// Reset clears everything. A search in progress is dropped without
// restoring anything; use Engine.SigCleanup for that.
func (s *State) Reset() {
	*s = State{}
}

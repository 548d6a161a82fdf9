package search

// Again repeats the last non-incremental search in direction dir without
// prompting. pattern selects glob matching (vi "n" and "N").
func (e *Engine) Again(dir int, pattern bool) error {
	if !e.state.hasLastSearch {
		e.disp.Ding()
		return ErrNoSearchString
	}
	return e.dosearch(e.state.lastSearch, dir, pattern)
}

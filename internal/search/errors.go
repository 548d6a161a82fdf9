package search

import (
	"errors"
	"fmt"
)

// Errors returned by search operations.
var (
	// ErrAborted indicates the user abandoned the search. The edit line,
	// point, mark and prompt are back to their state before the search.
	ErrAborted = errors.New("search aborted")

	// ErrNotFound indicates no history line matched.
	ErrNotFound = errors.New("search string not found")

	// ErrNoSearchString indicates there is no previous search string to
	// reuse. It is reported like a miss.
	ErrNoSearchString = fmt.Errorf("no previous search string: %w", ErrNotFound)

	// ErrNoSearch indicates Step was called with no search in progress.
	ErrNoSearch = errors.New("no search in progress")

	// ErrSearchActive indicates a search was started while another one is
	// still reading its string.
	ErrSearchActive = errors.New("search already in progress")
)

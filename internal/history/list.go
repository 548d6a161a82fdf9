package history

import "sync"

// DefaultMaxEntries is used when a List is created without a limit.
const DefaultMaxEntries = 500

// Option configures a List.
type Option func(*List)

// WithMaxEntries bounds the number of stored lines. Zero or less means
// DefaultMaxEntries.
func WithMaxEntries(n int) Option {
	return func(l *List) {
		if n > 0 {
			l.maxEntries = n
		}
	}
}

// WithIgnoreDups makes Add skip a line equal to the newest entry.
func WithIgnoreDups(ignore bool) Option {
	return func(l *List) {
		l.ignoreDups = ignore
	}
}

// List is an ordered history of lines with a position cursor.
// All methods are safe for concurrent use; the file watcher replaces
// contents from its own goroutine.
type List struct {
	mu    sync.RWMutex
	lines []string
	pos   int

	maxEntries int
	ignoreDups bool
}

// NewList creates an empty history positioned past the end.
func NewList(opts ...Option) *List {
	l := &List{maxEntries: DefaultMaxEntries}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a line and moves the cursor past the end.
// Empty lines are not recorded. It returns true if the line was stored.
func (l *List) Add(line string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	defer func() { l.pos = len(l.lines) }()

	if line == "" {
		return false
	}
	if l.ignoreDups && len(l.lines) > 0 && l.lines[len(l.lines)-1] == line {
		return false
	}

	l.lines = append(l.lines, line)
	if len(l.lines) > l.maxEntries {
		excess := len(l.lines) - l.maxEntries
		l.lines = append([]string(nil), l.lines[excess:]...)
	}
	return true
}

// Replace swaps in new contents, keeping the newest lines when there are
// more than the limit. The cursor moves past the end.
func (l *List) Replace(lines []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(lines) > l.maxEntries {
		lines = lines[len(lines)-l.maxEntries:]
	}
	l.lines = append([]string(nil), lines...)
	l.pos = len(l.lines)
}

// Len returns the number of stored lines.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.lines)
}

// Lines returns a copy of all stored lines, oldest first.
func (l *List) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.lines...)
}

// At returns the line at position i.
func (l *List) At(i int) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.lines) {
		return "", false
	}
	return l.lines[i], true
}

// Position returns the cursor.
func (l *List) Position() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pos
}

// SetPosition moves the cursor. It returns false and leaves the cursor
// unchanged when pos is outside [0, Len()].
func (l *List) SetPosition(pos int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if pos < 0 || pos > len(l.lines) {
		return false
	}
	l.pos = pos
	return true
}

// Current returns the line under the cursor. It reports false in the
// past-the-end slot.
func (l *List) Current() (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.pos >= len(l.lines) {
		return "", false
	}
	return l.lines[l.pos], true
}

// Previous moves the cursor one line back and returns that line.
func (l *List) Previous() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pos == 0 || len(l.lines) == 0 {
		return "", false
	}
	if l.pos > len(l.lines) {
		l.pos = len(l.lines)
	}
	l.pos--
	return l.lines[l.pos], true
}

// Next moves the cursor one line forward and returns that line.
// Moving onto the past-the-end slot succeeds with an empty line.
func (l *List) Next() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pos >= len(l.lines) {
		return "", false
	}
	l.pos++
	if l.pos == len(l.lines) {
		return "", true
	}
	return l.lines[l.pos], true
}

// Clear removes every line.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
	l.pos = 0
}

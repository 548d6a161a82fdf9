package undo

import (
	"errors"
	"time"
)

// ErrNothingToUndo indicates the undo log is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// DefaultMaxEntries bounds a log created with a non-positive limit.
const DefaultMaxEntries = 1000

// entry groups operations that undo together.
type entry struct {
	ops       []Operation
	timestamp time.Time
}

// Log records undoable operations for one line buffer.
type Log struct {
	entries []entry

	grouping bool
	group    []Operation

	maxEntries int
}

// NewLog creates an empty undo log holding at most maxEntries units.
func NewLog(maxEntries int) *Log {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Log{maxEntries: maxEntries}
}

// Push records an operation. While grouping, the operation joins the
// current group instead of becoming its own unit.
func (l *Log) Push(op Operation) {
	if l.grouping {
		l.group = append(l.group, op)
		return
	}
	l.pushEntry([]Operation{op})
}

func (l *Log) pushEntry(ops []Operation) {
	l.entries = append(l.entries, entry{ops: ops, timestamp: time.Now()})
	if len(l.entries) > l.maxEntries {
		excess := len(l.entries) - l.maxEntries
		l.entries = l.entries[excess:]
	}
}

// Pop removes the most recent unit and returns its operations in the order
// they must be reverted (newest first).
func (l *Log) Pop() ([]Operation, error) {
	if len(l.entries) == 0 {
		return nil, ErrNothingToUndo
	}
	e := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]

	ops := make([]Operation, len(e.ops))
	for i, op := range e.ops {
		ops[len(e.ops)-1-i] = op
	}
	return ops, nil
}

// BeginGroup starts a unit. Nested calls are ignored.
func (l *Log) BeginGroup() {
	if l.grouping {
		return
	}
	l.grouping = true
	l.group = nil
}

// EndGroup closes the current unit. Empty groups are dropped.
func (l *Log) EndGroup() {
	if !l.grouping {
		return
	}
	l.grouping = false
	if len(l.group) > 0 {
		l.pushEntry(l.group)
	}
	l.group = nil
}

// Len returns the number of undoable units.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear discards the whole log, including an open group.
func (l *Log) Clear() {
	l.entries = nil
	l.grouping = false
	l.group = nil
}

// Clone returns an independent copy of the log.
func (l *Log) Clone() *Log {
	c := &Log{
		maxEntries: l.maxEntries,
		grouping:   l.grouping,
		entries:    make([]entry, len(l.entries)),
	}
	for i, e := range l.entries {
		c.entries[i] = entry{ops: append([]Operation(nil), e.ops...), timestamp: e.timestamp}
	}
	if l.group != nil {
		c.group = append([]Operation(nil), l.group...)
	}
	return c
}

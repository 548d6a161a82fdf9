package buffer

import (
	"errors"
	"unicode/utf8"

	"github.com/dshills/keyline/internal/engine/undo"
)

// Errors returned by line operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrNothingToUndo    = undo.ErrNothingToUndo
)

// Line is the text being edited plus its cursor state.
// Line is not safe for concurrent use; the editor owns it exclusively.
type Line struct {
	text  string
	point int
	mark  int

	selection bool

	undo      *undo.Log
	undoLimit int
}

// NewLine creates an empty line.
func NewLine(opts ...Option) *Line {
	l := &Line{}
	for _, opt := range opts {
		opt(l)
	}
	l.undo = undo.NewLog(l.undoLimit)
	return l
}

// Text returns the line contents.
func (l *Line) Text() string {
	return l.text
}

// Len returns the length of the line in bytes.
func (l *Line) Len() int {
	return len(l.text)
}

// Point returns the cursor offset.
func (l *Line) Point() int {
	return l.point
}

// Mark returns the mark offset.
func (l *Line) Mark() int {
	return l.mark
}

// SetPoint moves the cursor, clamped into [0, Len()].
func (l *Line) SetPoint(p int) {
	l.point = l.clamp(p)
}

// SetMark moves the mark, clamped into [0, Len()].
func (l *Line) SetMark(m int) {
	l.mark = l.clamp(m)
}

// SetText replaces the line contents as a single undoable edit.
// Point moves to the end of the new text and the mark to its start.
func (l *Line) SetText(text string) {
	if text != l.text {
		l.record(undo.NewReplaceOperation(0, l.text, text))
		l.text = text
	}
	l.point = len(text)
	l.mark = 0
}

// Reset empties the line and its undo log.
func (l *Line) Reset() {
	l.text = ""
	l.point = 0
	l.mark = 0
	l.selection = false
	l.undo.Clear()
}

// FixPoint clamps point and mark into bounds and moves them back onto a
// rune boundary if they fell inside a multi-byte sequence.
func (l *Line) FixPoint() {
	l.point = l.clamp(l.point)
	l.mark = l.clamp(l.mark)
}

func (l *Line) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(l.text) {
		return len(l.text)
	}
	for off > 0 && off < len(l.text) && !utf8.RuneStart(l.text[off]) {
		off--
	}
	return off
}

// ActivateMark turns on the visible selection between point and mark.
func (l *Line) ActivateMark() {
	l.selection = true
}

// DeactivateMark turns the visible selection off. Point and mark stay.
func (l *Line) DeactivateMark() {
	l.selection = false
}

// SelectionActive reports whether the selection is visible.
func (l *Line) SelectionActive() bool {
	return l.selection
}

// Region returns the selected span as ordered offsets.
func (l *Line) Region() (start, end int) {
	if l.point < l.mark {
		return l.point, l.mark
	}
	return l.mark, l.point
}

// BeforePoint returns the text between the start of the line and point.
func (l *Line) BeforePoint() string {
	return l.text[:l.point]
}

// UndoLen returns the number of undoable units recorded for the line.
func (l *Line) UndoLen() int {
	return l.undo.Len()
}

// DiscardUndo throws the undo log away.
func (l *Line) DiscardUndo() {
	l.undo.Clear()
}

// BeginUndoGroup makes the following edits undo as one unit.
func (l *Line) BeginUndoGroup() {
	l.undo.BeginGroup()
}

// EndUndoGroup closes the unit started by BeginUndoGroup.
func (l *Line) EndUndoGroup() {
	l.undo.EndGroup()
}

// Undo reverts the most recent unit of edits.
func (l *Line) Undo() error {
	ops, err := l.undo.Pop()
	if err != nil {
		return err
	}
	for _, op := range ops {
		text, ok := op.Revert(l.text)
		if !ok {
			// The log no longer describes this text; drop it.
			l.undo.Clear()
			return ErrNothingToUndo
		}
		l.text = text
		l.point = l.clamp(op.PointBefore)
		l.mark = l.clamp(op.MarkBefore)
	}
	return nil
}

func (l *Line) record(op undo.Operation) {
	op.PointBefore = l.point
	op.MarkBefore = l.mark
	l.undo.Push(op)
}

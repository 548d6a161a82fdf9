package buffer

import "github.com/dshills/keyline/internal/engine/undo"

// Snapshot is a deep copy of a line's editable state.
type Snapshot struct {
	text      string
	point     int
	mark      int
	selection bool
	undo      *undo.Log
}

// Text returns the saved text.
func (s *Snapshot) Text() string {
	return s.text
}

// Point returns the saved point.
func (s *Snapshot) Point() int {
	return s.point
}

// Mark returns the saved mark.
func (s *Snapshot) Mark() int {
	return s.mark
}

// Snapshot captures the line's text, point, mark, selection and undo log.
func (l *Line) Snapshot() *Snapshot {
	return &Snapshot{
		text:      l.text,
		point:     l.point,
		mark:      l.mark,
		selection: l.selection,
		undo:      l.undo.Clone(),
	}
}

// Restore puts the line back into the captured state. The snapshot can be
// restored more than once.
func (l *Line) Restore(s *Snapshot) {
	if s == nil {
		return
	}
	l.text = s.text
	l.point = s.point
	l.mark = s.mark
	l.selection = s.selection
	l.undo = s.undo.Clone()
}

package buffer

// Option is a functional option for configuring a Line.
type Option func(*Line)

// WithText sets the initial text. Point is placed at the end.
func WithText(text string) Option {
	return func(l *Line) {
		l.text = text
		l.point = len(text)
	}
}

// WithUndoLimit bounds the number of undo units the line keeps.
func WithUndoLimit(n int) Option {
	return func(l *Line) {
		l.undoLimit = n
	}
}

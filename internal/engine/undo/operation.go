package undo

// Operation represents a single atomic edit with before state.
type Operation struct {
	// Offset is the byte offset where the edit starts.
	Offset int

	// Old is the text that was replaced (empty for pure insertions).
	Old string

	// New is the text that was inserted (empty for pure deletions).
	New string

	// PointBefore and MarkBefore are restored when the edit is undone.
	PointBefore int
	MarkBefore  int
}

// NewInsertOperation creates an operation for inserting text at offset.
func NewInsertOperation(offset int, text string) Operation {
	return Operation{Offset: offset, New: text}
}

// NewDeleteOperation creates an operation for deleting text at offset.
func NewDeleteOperation(offset int, deleted string) Operation {
	return Operation{Offset: offset, Old: deleted}
}

// NewReplaceOperation creates an operation replacing old with new at offset.
func NewReplaceOperation(offset int, old, new string) Operation {
	return Operation{Offset: offset, Old: old, New: new}
}

// IsInsert returns true if this operation only inserts text.
func (op Operation) IsInsert() bool {
	return op.Old == "" && op.New != ""
}

// IsDelete returns true if this operation only deletes text.
func (op Operation) IsDelete() bool {
	return op.Old != "" && op.New == ""
}

// BytesDelta returns the change in line length caused by this operation.
func (op Operation) BytesDelta() int {
	return len(op.New) - len(op.Old)
}

// Revert undoes the operation against text, returning the restored text.
// It returns false if text no longer holds New at Offset.
func (op Operation) Revert(text string) (string, bool) {
	end := op.Offset + len(op.New)
	if op.Offset < 0 || end > len(text) || text[op.Offset:end] != op.New {
		return text, false
	}
	return text[:op.Offset] + op.Old + text[end:], true
}

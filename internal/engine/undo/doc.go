// Package undo provides the per-line undo log used by the line buffer.
//
// Every edit to a buffer.Line is recorded as an Operation describing the
// replaced span, the old and new text, and the point and mark before the
// edit. Operations recorded between BeginGroup and EndGroup undo as one
// unit, so replacing the whole line with a history entry is a single step.
//
// The log is opaque to its users beyond Push, Pop and Clear: search code
// discards it wholesale (Clear) and snapshots copy it (Clone).
package undo

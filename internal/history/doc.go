// Package history provides the command history store used by the line
// editor: an ordered list of previously accepted lines with a movable
// position cursor.
//
// Positions run from 0 (oldest) to Len(). Position Len() is the slot of the
// line currently being edited; it holds no history text.
//
// Two matchers are provided. SubstringSearch finds a literal needle, either
// anywhere in a line or anchored at its start, optionally case-folded.
// PatternSearch matches glob patterns (tidwall/match). Both search from the
// current position inclusive and move the cursor only on success.
//
// A Watcher keeps a List in sync with a history file that other sessions
// rewrite.
package history

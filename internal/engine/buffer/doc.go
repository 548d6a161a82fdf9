// Package buffer provides the single-line edit buffer the line editor and
// the history search engine operate on.
//
// A Line holds UTF-8 text with a point (cursor) and a mark, both byte
// offsets, plus a selection flag and an undo log. Editing primitives work
// in grapheme clusters (via uniseg), so a backspace over "é" removes
// both code points.
//
// Snapshot and Restore copy the full editable state, including the undo
// log. The search engine takes a snapshot before composing a search string
// and restores it bit-for-bit on abort.
package buffer

// Package terminal provides a full-screen frontend built on tcell.
//
// The screen is split into three areas. The bottom row holds messages,
// the row above it holds the prompt and edit line, and the rows above
// that show a transcript of accepted lines.
//
// Terminal implements both the key source and the display used by the
// editor and the search engine. Bracketed paste events are reported as
// an Escape followed by a paste, which is the shape the byte-stream
// reader produces for the same input.
package terminal

// Package stream reads keys from a byte stream and echoes the edit line
// with ANSI escape sequences. It serves pipes, tests and terminals that
// tcell cannot drive.
//
// The Reader decodes UTF-8 into rune events and control bytes into
// control events. Escape sequences for arrow and editing keys are decoded
// when they are already buffered; any other Escape is returned bare so a
// keymap can treat it as a Meta prefix. Bracketed-paste markers are left
// for ReadPastePrefix.
package stream

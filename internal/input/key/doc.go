// Package key provides key event types and parsing for the line editor.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "RET", "ESC"
//   - Readline style: "C-r", "M-p", "\C-x", "M-C-j"
//   - With modifiers: "Ctrl+S", "Alt+P"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>"
//
// Control characters decoded from a terminal are represented as the
// lowercase letter with ModCtrl, so the byte 0x17 and the spec "C-w"
// produce the same Event.
package key

package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys (letters, numbers, punctuation)
	// and for control characters, which carry ModCtrl.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k.IsArrowKey() || k == KeyHome || k == KeyEnd || k == KeyPageUp || k == KeyPageDown
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"none":      KeyNone,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"ret":       KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"rubout":    KeyBackspace,
	"del":       KeyBackspace,
	"delete":    KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}

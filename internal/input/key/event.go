package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// Ctrl returns the control-character event for r, e.g. Ctrl('w') for C-w.
func Ctrl(r rune) Event {
	return NewRuneEvent(unicode.ToLower(r), ModCtrl)
}

// Meta returns e with the Meta modifier added, e.g. Meta(Rune('p')) for M-p.
func Meta(e Event) Event {
	e.Modifiers = e.Modifiers.With(ModMeta)
	return e
}

// Rune returns the unmodified event for a character.
func Rune(r rune) Event {
	return NewRuneEvent(r, ModNone)
}

// FromControl converts a C0 control byte (0x00-0x1f, 0x7f) into its event.
// TAB, CR, ESC and DEL become their special keys; everything else becomes
// a Ctrl rune event.
func FromControl(b byte) Event {
	switch b {
	case '\t':
		return NewSpecialEvent(KeyTab, ModNone)
	case '\r':
		return NewSpecialEvent(KeyEnter, ModNone)
	case 0x1b:
		return NewSpecialEvent(KeyEscape, ModNone)
	case 0x7f:
		return NewSpecialEvent(KeyBackspace, ModNone)
	case 0:
		return Ctrl('@')
	}
	if b <= 0x1a {
		return Ctrl(rune(b) + 'a' - 1)
	}
	if b < 0x20 {
		return Ctrl(rune(b) + '@')
	}
	return Rune(rune(b))
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without Ctrl or Meta.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsCtrl reports whether e is the control character C-r.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Modifiers == ModCtrl && e.Rune == unicode.ToLower(r)
}

// IsMeta reports whether the event carries Meta or Alt.
func (e Event) IsMeta() bool {
	return e.Modifiers.HasMeta() || e.Modifiers.HasAlt()
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsEnter returns true for RET and its control aliases C-j and C-m.
func (e Event) IsEnter() bool {
	return (e.Key == KeyEnter && e.Modifiers == ModNone) || e.IsCtrl('j') || e.IsCtrl('m')
}

// IsRubout returns true for DEL (Backspace) and C-h.
func (e Event) IsRubout() bool {
	return (e.Key == KeyBackspace && e.Modifiers == ModNone) || e.IsCtrl('h')
}

// IsInterrupt returns true for the abort keys C-c and C-g.
func (e Event) IsInterrupt() bool {
	return e.IsCtrl('c') || e.IsCtrl('g')
}

// IsNul returns true for the NUL character (C-@, also sent as C-SPC).
func (e Event) IsNul() bool {
	return e.IsCtrl('@') || e.IsCtrl(' ')
}

// Literal returns the text inserted when the event is inserted verbatim,
// as quoted-insert does. Keys with no character form return "".
func (e Event) Literal() string {
	var s string
	switch e.Key {
	case KeyRune:
		if e.Modifiers.HasCtrl() {
			switch {
			case e.Rune == '@' || e.Rune == ' ':
				s = "\x00"
			case e.Rune == '?':
				s = "\x7f"
			case e.Rune >= 'a' && e.Rune <= 'z':
				s = string(e.Rune - 'a' + 1)
			case e.Rune >= '[' && e.Rune <= '_':
				s = string(e.Rune - '@')
			default:
				s = string(e.Rune)
			}
		} else {
			s = string(e.Rune)
		}
	case KeyEscape:
		s = "\x1b"
	case KeyEnter:
		s = "\r"
	case KeyTab:
		s = "\t"
	case KeyBackspace:
		s = "\x7f"
	default:
		return ""
	}
	if e.IsMeta() {
		return "\x1b" + s
	}
	return s
}

// String returns the readline-style representation.
// Examples: "a", "C-w", "M-p", "M-C-j", "ESC", "RET", "Up"
func (e Event) String() string {
	var b strings.Builder
	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	b.WriteString(mods.Prefix())

	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			b.WriteString("SPC")
		} else {
			b.WriteRune(e.Rune)
		}
	case KeyEscape:
		b.WriteString("ESC")
	case KeyEnter:
		b.WriteString("RET")
	case KeyTab:
		b.WriteString("TAB")
	case KeyBackspace:
		b.WriteString("DEL")
	default:
		b.WriteString(e.Key.String())
	}
	return b.String()
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}

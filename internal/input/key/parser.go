package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "RET", "ESC", "TAB", "DEL", "SPC", "Up", "Home"
//   - Readline style: "C-r", "M-p", "M-C-j", "\C-x", "\M-n", "\e"
//   - With modifiers: "Ctrl+S", "Alt+P"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>"
//
// The result is normalized (see Event.Normalize) so that it compares equal
// to the events produced by the input decoders.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	var (
		e   Event
		err error
	)
	switch {
	case strings.HasPrefix(spec, "<") && len(spec) > 1:
		if !strings.HasSuffix(spec, ">") {
			return Event{}, ErrUnmatchedBracket
		}
		e, err = parseVimStyle(spec[1 : len(spec)-1])
	case strings.Contains(spec, "+") && len(spec) > 1:
		e, err = parseModifierStyle(spec)
	default:
		e, err = parseReadlineStyle(spec)
	}
	if err != nil {
		return Event{}, err
	}
	return e.Normalize(), nil
}

// parseVimStyle parses Vim-style notation like "C-s", "A-f", "CR", "Esc"
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	// "<C-->" binds C-minus
	if strings.HasSuffix(inner, "--") {
		parts = append(strings.Split(strings.TrimSuffix(inner, "--"), "-"), "-")
	}

	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d":
			mods = mods.With(ModMeta)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseReadlineStyle parses inputrc notation: "C-x", "M-p", "\C-x", "\e".
func parseReadlineStyle(spec string) (Event, error) {
	var mods Modifier
	rest := spec
	for len(rest) > 2 {
		s := strings.TrimPrefix(rest, `\`)
		if len(s) < 3 || s[1] != '-' {
			break
		}
		switch s[0] {
		case 'C', 'c':
			mods = mods.With(ModCtrl)
		case 'M', 'm':
			mods = mods.With(ModMeta)
		default:
			return parseKeyWithModifiers(rest, mods)
		}
		rest = s[2:]
	}
	if rest == `\e` {
		return NewSpecialEvent(KeyEscape, mods), nil
	}
	return parseKeyWithModifiers(rest, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	if strings.TrimSpace(keyPart) != "" {
		keyPart = strings.TrimSpace(keyPart)
	}
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space", "spc":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bslash":
		return NewRuneEvent('\\', mods), nil
	case "lfd", "newline":
		return NewRuneEvent('j', mods.With(ModCtrl)), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// Normalize maps equivalent spellings of a key onto one canonical event:
// Alt becomes Meta, Shift is dropped from characters, control letters are
// lowercase, and C-i, C-m, C-[ and C-? become TAB, RET, ESC and DEL.
func (e Event) Normalize() Event {
	if e.Modifiers.HasAlt() {
		e.Modifiers = e.Modifiers.Without(ModAlt).With(ModMeta)
	}
	if e.Key != KeyRune {
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if !e.Modifiers.HasCtrl() {
		return e
	}
	e.Rune = unicode.ToLower(e.Rune)
	rest := e.Modifiers.Without(ModCtrl)
	switch e.Rune {
	case 'i':
		return NewSpecialEvent(KeyTab, rest)
	case 'm':
		return NewSpecialEvent(KeyEnter, rest)
	case '[':
		return NewSpecialEvent(KeyEscape, rest)
	case '?':
		return NewSpecialEvent(KeyBackspace, rest)
	case ' ':
		e.Rune = '@'
	}
	return e
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.String(), nil
}

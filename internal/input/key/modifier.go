package key

import "strings"

// Modifier is the set of modifier keys held with a key.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	// ModAlt is what tcell reports for Option/Alt. It prints as M-.
	ModAlt
	// ModMeta is an ESC prefix on a byte stream.
	ModMeta

	ModNone Modifier = 0
)

// prefixes is the readline rendering of each modifier, in print order.
var prefixes = [...]struct {
	mask   Modifier
	prefix string
}{
	{ModMeta | ModAlt, "M-"},
	{ModCtrl, "C-"},
	{ModShift, "S-"},
}

func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }
func (m Modifier) HasShift() bool        { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool         { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool          { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool         { return m.Has(ModMeta) }

// With returns m plus mod.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without returns m minus mod.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// Prefix renders m the way it is written before a key name,
// e.g. "M-C-" for Ctrl plus Meta. Alt and Meta share one "M-".
func (m Modifier) Prefix() string {
	var b strings.Builder
	for _, p := range prefixes {
		if m.Has(p.mask) {
			b.WriteString(p.prefix)
		}
	}
	return b.String()
}

// String returns the prefix without its trailing dash ("M-C"), or
// "none".
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	return strings.TrimSuffix(m.Prefix(), "-")
}

// ModifierFromName resolves a modifier word from "Ctrl+S" notation,
// ignoring case. Unknown names give ModNone.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "c", "ctrl", "control":
		return ModCtrl
	case "a", "alt", "option":
		return ModAlt
	case "s", "shift":
		return ModShift
	case "m", "meta":
		return ModMeta
	}
	return ModNone
}

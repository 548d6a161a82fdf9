package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeyDelete, "Delete"},
		{KeyUp, "Up"},
		{KeyRight, "Right"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyClassification(t *testing.T) {
	if KeyRune.IsSpecial() || KeyNone.IsSpecial() {
		t.Error("rune and none keys should not be special")
	}
	if !KeyEscape.IsSpecial() {
		t.Error("escape should be special")
	}
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("arrow classification wrong")
	}
	if !KeyHome.IsNavigationKey() || KeyTab.IsNavigationKey() {
		t.Error("navigation classification wrong")
	}
}

func TestKeyFromName(t *testing.T) {
	tests := map[string]Key{
		"RET":     KeyEnter,
		" esc ":   KeyEscape,
		"Rubout":  KeyBackspace,
		"DEL":     KeyBackspace,
		"Delete":  KeyDelete,
		"pgdn":    KeyPageDown,
		"unknown": KeyNone,
	}
	for name, want := range tests {
		if got := KeyFromName(name); got != want {
			t.Errorf("KeyFromName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod    Modifier
		prefix string
		str    string
	}{
		{ModNone, "", "none"},
		{ModCtrl, "C-", "C"},
		{ModMeta | ModCtrl, "M-C-", "M-C"},
		{ModAlt, "M-", "M"},
		{ModAlt | ModMeta, "M-", "M"},
		{ModShift | ModCtrl, "C-S-", "C-S"},
	}

	for _, tt := range tests {
		if got := tt.mod.Prefix(); got != tt.prefix {
			t.Errorf("Modifier(%d).Prefix() = %q, want %q", tt.mod, got, tt.prefix)
		}
		if got := tt.mod.String(); got != tt.str {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.str)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	for name, want := range map[string]Modifier{
		"Ctrl": ModCtrl, "control": ModCtrl, "ALT": ModAlt, "option": ModAlt,
		"shift": ModShift, "Meta": ModMeta, "hyper": ModNone,
	} {
		if got := ModifierFromName(name); got != want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", name, got, want)
		}
	}
}

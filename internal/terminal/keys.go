package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyline/internal/input/key"
)

// specialKeys maps tcell's named non-character keys.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// convertKey translates a tcell key event.
func convertKey(ev *tcell.EventKey) key.Event {
	k := ev.Key()
	mods := convertMod(ev.Modifiers())
	meta := mods.HasAlt() || mods.HasMeta()

	if sk, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(sk, mods)
	}

	var e key.Event
	switch {
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		// KeyCtrlSpace..KeyCtrlUnderscore sit 64 above their C0 codes.
		e = key.FromControl(byte(k - tcell.KeyCtrlSpace))
	case k < ' ':
		e = key.FromControl(byte(k))
	case k == tcell.KeyRune && mods.HasCtrl():
		e = key.Ctrl(ev.Rune())
	case k == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods.Without(key.ModShift))
	default:
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
	if meta {
		e = key.Meta(e)
	}
	return e
}

// convertMod maps tcell modifiers. Alt is reported as Meta.
func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

package keymap

import (
	"errors"
	"fmt"
)

// Editing mode names.
const (
	ModeEmacs     = "emacs"
	ModeViInsert  = "vi-insert"
	ModeViCommand = "vi-command"
)

// Keymap errors.
var (
	ErrEmptyKeys     = errors.New("empty keys")
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownMode   = errors.New("unknown keymap mode")
)

// KnownMode reports whether mode names a keymap mode.
func KnownMode(mode string) bool {
	switch mode {
	case ModeEmacs, ModeViInsert, ModeViCommand:
		return true
	}
	return false
}

// Keymap holds key bindings for a mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the editing mode this keymap applies to.
	Mode string

	// Bindings are the key-to-action mappings. Later bindings for the
	// same key win.
	Bindings []Binding

	// Source indicates where this keymap was defined.
	// Examples: "default", "config", "script"
	Source string
}

// NewKeymap creates a new keymap with the given name and mode.
func NewKeymap(name, mode string) *Keymap {
	return &Keymap{
		Name:     name,
		Mode:     mode,
		Bindings: make([]Binding, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	if !KnownMode(k.Mode) {
		return fmt.Errorf("keymap %q: %w %q", k.Name, ErrUnknownMode, k.Mode)
	}
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: %w", i, ErrEmptyKeys)
		}
		if !KnownAction(b.Action) {
			return fmt.Errorf("binding %d (%s): %w %q", i, b.Keys, ErrUnknownAction, b.Action)
		}
		if _, err := b.Event(); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}

// Clone creates a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Mode:     k.Mode,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	return clone
}

package keymap

import (
	"github.com/dshills/keyline/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key that triggers this binding.
	// Formats: "a", "C-r", "M-p", "\C-x", "<C-w>", "Ctrl+R"
	Keys string

	// Action is the readline command to run.
	// Examples: "accept-line", "history-search-backward"
	Action string

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// Event parses the binding's key.
func (b Binding) Event() (key.Event, error) {
	return key.Parse(b.Keys)
}

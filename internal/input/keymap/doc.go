// Package keymap maps key events to readline command names.
//
// A Keymap is a named list of bindings for one editing mode. The
// Registry indexes keymaps by mode and resolves a key event to the
// binding that handles it.
//
// # Modes
//
//	emacs       - the default editing mode
//	vi-insert   - vi insertion mode
//	vi-command  - vi movement mode
//
// # Key Notation
//
// Keys use readline notation, with the key package's other forms also
// accepted:
//
//	"C-r"     - Control-r
//	"M-p"     - Meta-p (ESC p)
//	"\C-x"    - inputrc spelling of Control-x
//	"RET"     - Return
//	"<C-w>"   - Vim notation
//
// # Usage
//
//	registry := keymap.NewRegistry()
//	if err := keymap.LoadDefaults(registry); err != nil {
//	    return err
//	}
//	if b, ok := registry.Lookup(keymap.ModeEmacs, ev); ok {
//	    // run b.Action
//	}
package keymap

package keymap

// LoadDefaults loads all default keymaps into the registry.
func LoadDefaults(r *Registry) error {
	keymaps := []*Keymap{
		DefaultEmacsKeymap(),
		DefaultViInsertKeymap(),
		DefaultViCommandKeymap(),
	}

	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}

	return nil
}

// DefaultEmacsKeymap returns the emacs-mode bindings. Printable keys
// without a binding self-insert.
func DefaultEmacsKeymap() *Keymap {
	return &Keymap{
		Name:   "default-emacs",
		Mode:   ModeEmacs,
		Source: "default",
		Bindings: []Binding{
			{Keys: "RET", Action: ActionAcceptLine, Description: "Accept the line"},
			{Keys: "C-j", Action: ActionAcceptLine, Description: "Accept the line"},
			{Keys: "DEL", Action: ActionBackwardDelete, Description: "Delete the character before point"},
			{Keys: "C-h", Action: ActionBackwardDelete, Description: "Delete the character before point"},
			{Keys: "C-d", Action: ActionDeleteChar, Description: "Delete the character at point, or end input on an empty line"},
			{Keys: "Delete", Action: ActionDeleteChar, Description: "Delete the character at point"},
			{Keys: "C-w", Action: ActionWordRubout, Description: "Kill the word before point"},
			{Keys: "C-u", Action: ActionLineDiscard, Description: "Kill backward to the start of the line"},
			{Keys: "C-a", Action: ActionBeginningOfLine, Description: "Move to the start of the line"},
			{Keys: "Home", Action: ActionBeginningOfLine, Description: "Move to the start of the line"},
			{Keys: "C-e", Action: ActionEndOfLine, Description: "Move to the end of the line"},
			{Keys: "End", Action: ActionEndOfLine, Description: "Move to the end of the line"},
			{Keys: "C-b", Action: ActionBackwardChar, Description: "Move back a character"},
			{Keys: "Left", Action: ActionBackwardChar, Description: "Move back a character"},
			{Keys: "C-f", Action: ActionForwardChar, Description: "Move forward a character"},
			{Keys: "Right", Action: ActionForwardChar, Description: "Move forward a character"},
			{Keys: "C-p", Action: ActionPreviousHistory, Description: "Fetch the previous history line"},
			{Keys: "Up", Action: ActionPreviousHistory, Description: "Fetch the previous history line"},
			{Keys: "C-n", Action: ActionNextHistory, Description: "Fetch the next history line"},
			{Keys: "Down", Action: ActionNextHistory, Description: "Fetch the next history line"},
			{Keys: "C-_", Action: ActionUndo, Description: "Undo the last edit"},
			{Keys: "C-g", Action: ActionAbort, Description: "Abort the current command"},
			{Keys: "C-c", Action: ActionInterrupt, Description: "Interrupt the line"},
			{Keys: "C-q", Action: ActionQuotedInsert, Description: "Insert the next key verbatim"},
			{Keys: "C-v", Action: ActionQuotedInsert, Description: "Insert the next key verbatim"},

			{Keys: "M-p", Action: ActionNonincReverseSearch, Description: "Search history backward for a string"},
			{Keys: "M-n", Action: ActionNonincForwardSearch, Description: "Search history forward for a string"},
			{Keys: "M-P", Action: ActionNonincReverseSearchAgain, Description: "Repeat the last search backward"},
			{Keys: "M-N", Action: ActionNonincForwardSearchAgain, Description: "Repeat the last search forward"},
			{Keys: "PageUp", Action: ActionHistorySearchBackward, Description: "Search history backward for the text before point"},
			{Keys: "PageDown", Action: ActionHistorySearchForward, Description: "Search history forward for the text before point"},
			{Keys: "M-Up", Action: ActionHistorySubstringSearchBackward, Description: "Search history backward for the text before point anywhere in the line"},
			{Keys: "M-Down", Action: ActionHistorySubstringSearchForward, Description: "Search history forward for the text before point anywhere in the line"},

			{Keys: "M-0", Action: ActionDigitArgument},
			{Keys: "M-1", Action: ActionDigitArgument},
			{Keys: "M-2", Action: ActionDigitArgument},
			{Keys: "M-3", Action: ActionDigitArgument},
			{Keys: "M-4", Action: ActionDigitArgument},
			{Keys: "M-5", Action: ActionDigitArgument},
			{Keys: "M-6", Action: ActionDigitArgument},
			{Keys: "M-7", Action: ActionDigitArgument},
			{Keys: "M-8", Action: ActionDigitArgument},
			{Keys: "M-9", Action: ActionDigitArgument},
			{Keys: "M--", Action: ActionDigitArgument, Description: "Start a negative argument"},

			{Keys: "M-C-j", Action: ActionViEditingMode, Description: "Switch to vi editing mode"},
		},
	}
}

// DefaultViInsertKeymap returns the vi insertion-mode bindings.
func DefaultViInsertKeymap() *Keymap {
	return &Keymap{
		Name:   "default-vi-insert",
		Mode:   ModeViInsert,
		Source: "default",
		Bindings: []Binding{
			{Keys: "ESC", Action: ActionViMovementMode, Description: "Enter vi command mode"},
			{Keys: "RET", Action: ActionAcceptLine},
			{Keys: "C-j", Action: ActionAcceptLine},
			{Keys: "DEL", Action: ActionBackwardDelete},
			{Keys: "C-h", Action: ActionBackwardDelete},
			{Keys: "C-d", Action: ActionDeleteChar},
			{Keys: "Delete", Action: ActionDeleteChar},
			{Keys: "C-w", Action: ActionWordRubout},
			{Keys: "C-u", Action: ActionLineDiscard},
			{Keys: "Left", Action: ActionBackwardChar},
			{Keys: "Right", Action: ActionForwardChar},
			{Keys: "Home", Action: ActionBeginningOfLine},
			{Keys: "End", Action: ActionEndOfLine},
			{Keys: "Up", Action: ActionPreviousHistory},
			{Keys: "Down", Action: ActionNextHistory},
			{Keys: "C-p", Action: ActionPreviousHistory},
			{Keys: "C-n", Action: ActionNextHistory},
			{Keys: "C-c", Action: ActionInterrupt},
			{Keys: "C-v", Action: ActionQuotedInsert},
			{Keys: "PageUp", Action: ActionHistorySearchBackward},
			{Keys: "PageDown", Action: ActionHistorySearchForward},
		},
	}
}

// DefaultViCommandKeymap returns the vi command-mode bindings.
func DefaultViCommandKeymap() *Keymap {
	return &Keymap{
		Name:   "default-vi-command",
		Mode:   ModeViCommand,
		Source: "default",
		Bindings: []Binding{
			{Keys: "i", Action: ActionViInsertionMode, Description: "Insert before point"},
			{Keys: "a", Action: ActionViAppendMode, Description: "Insert after point"},
			{Keys: "A", Action: ActionViAppendEOL, Description: "Insert at the end of the line"},
			{Keys: "I", Action: ActionViInsertBeg, Description: "Insert at the start of the line"},
			{Keys: "h", Action: ActionBackwardChar},
			{Keys: "l", Action: ActionForwardChar},
			{Keys: "SPC", Action: ActionForwardChar},
			{Keys: "0", Action: ActionViArgDigit, Description: "Start of line, or a count digit"},
			{Keys: "1", Action: ActionViArgDigit},
			{Keys: "2", Action: ActionViArgDigit},
			{Keys: "3", Action: ActionViArgDigit},
			{Keys: "4", Action: ActionViArgDigit},
			{Keys: "5", Action: ActionViArgDigit},
			{Keys: "6", Action: ActionViArgDigit},
			{Keys: "7", Action: ActionViArgDigit},
			{Keys: "8", Action: ActionViArgDigit},
			{Keys: "9", Action: ActionViArgDigit},
			{Keys: "$", Action: ActionEndOfLine},
			{Keys: "^", Action: ActionBeginningOfLine},
			{Keys: "k", Action: ActionPreviousHistory},
			{Keys: "-", Action: ActionPreviousHistory},
			{Keys: "j", Action: ActionNextHistory},
			{Keys: "+", Action: ActionNextHistory},
			{Keys: "x", Action: ActionDeleteChar},
			{Keys: "X", Action: ActionBackwardDelete},
			{Keys: "u", Action: ActionUndo},
			{Keys: "/", Action: ActionViSearch, Description: "Search history backward for a pattern"},
			{Keys: "?", Action: ActionViSearch, Description: "Search history forward for a pattern"},
			{Keys: "n", Action: ActionViSearchAgain, Description: "Repeat the last search backward"},
			{Keys: "N", Action: ActionViSearchAgain, Description: "Repeat the last search forward"},
			{Keys: "RET", Action: ActionAcceptLine},
			{Keys: "C-j", Action: ActionAcceptLine},
			{Keys: "C-c", Action: ActionInterrupt},
			{Keys: "C-d", Action: ActionEndOfFile},
			{Keys: "Left", Action: ActionBackwardChar},
			{Keys: "Right", Action: ActionForwardChar},
			{Keys: "Up", Action: ActionPreviousHistory},
			{Keys: "Down", Action: ActionNextHistory},
			{Keys: "DEL", Action: ActionBackwardChar},
			{Keys: "M-C-j", Action: ActionEmacsMode, Description: "Switch to emacs editing mode"},
		},
	}
}

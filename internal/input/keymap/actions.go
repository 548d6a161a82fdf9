package keymap

import "sort"

// Readline command names understood by the editor.
const (
	ActionSelfInsert      = "self-insert"
	ActionAcceptLine      = "accept-line"
	ActionBackwardDelete  = "backward-delete-char"
	ActionDeleteChar      = "delete-char"
	ActionWordRubout      = "unix-word-rubout"
	ActionLineDiscard     = "unix-line-discard"
	ActionBeginningOfLine = "beginning-of-line"
	ActionEndOfLine       = "end-of-line"
	ActionBackwardChar    = "backward-char"
	ActionForwardChar     = "forward-char"
	ActionPreviousHistory = "previous-history"
	ActionNextHistory     = "next-history"
	ActionUndo            = "undo"
	ActionAbort           = "abort"
	ActionInterrupt       = "interrupt"
	ActionEndOfFile       = "end-of-file"
	ActionDigitArgument   = "digit-argument"
	ActionQuotedInsert    = "quoted-insert"

	ActionNonincForwardSearch      = "non-incremental-forward-search-history"
	ActionNonincReverseSearch      = "non-incremental-reverse-search-history"
	ActionNonincForwardSearchAgain = "non-incremental-forward-search-history-again"
	ActionNonincReverseSearchAgain = "non-incremental-reverse-search-history-again"

	ActionHistorySearchForward           = "history-search-forward"
	ActionHistorySearchBackward          = "history-search-backward"
	ActionHistorySubstringSearchForward  = "history-substring-search-forward"
	ActionHistorySubstringSearchBackward = "history-substring-search-backward"

	ActionViSearch        = "vi-search"
	ActionViSearchAgain   = "vi-search-again"
	ActionViMovementMode  = "vi-movement-mode"
	ActionViInsertionMode = "vi-insertion-mode"
	ActionViAppendMode    = "vi-append-mode"
	ActionViAppendEOL     = "vi-append-eol"
	ActionViInsertBeg     = "vi-insert-beg"
	ActionViArgDigit      = "vi-arg-digit"
	ActionViEditingMode   = "vi-editing-mode"
	ActionEmacsMode       = "emacs-editing-mode"
)

var knownActions = map[string]bool{
	ActionSelfInsert:      true,
	ActionAcceptLine:      true,
	ActionBackwardDelete:  true,
	ActionDeleteChar:      true,
	ActionWordRubout:      true,
	ActionLineDiscard:     true,
	ActionBeginningOfLine: true,
	ActionEndOfLine:       true,
	ActionBackwardChar:    true,
	ActionForwardChar:     true,
	ActionPreviousHistory: true,
	ActionNextHistory:     true,
	ActionUndo:            true,
	ActionAbort:           true,
	ActionInterrupt:       true,
	ActionEndOfFile:       true,
	ActionDigitArgument:   true,
	ActionQuotedInsert:    true,

	ActionNonincForwardSearch:      true,
	ActionNonincReverseSearch:      true,
	ActionNonincForwardSearchAgain: true,
	ActionNonincReverseSearchAgain: true,

	ActionHistorySearchForward:           true,
	ActionHistorySearchBackward:          true,
	ActionHistorySubstringSearchForward:  true,
	ActionHistorySubstringSearchBackward: true,

	ActionViSearch:        true,
	ActionViSearchAgain:   true,
	ActionViMovementMode:  true,
	ActionViInsertionMode: true,
	ActionViAppendMode:    true,
	ActionViAppendEOL:     true,
	ActionViInsertBeg:     true,
	ActionViArgDigit:      true,
	ActionViEditingMode:   true,
	ActionEmacsMode:       true,
}

// KnownAction reports whether name is a command the editor implements.
func KnownAction(name string) bool {
	return knownActions[name]
}

// Actions returns every command name, sorted.
func Actions() []string {
	names := make([]string, 0, len(knownActions))
	for name := range knownActions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

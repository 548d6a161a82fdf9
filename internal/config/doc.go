// Package config loads keyline settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← KEYLINE_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/keyline/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← readline defaults
//	└─────────────────────────────┘
//
// # File Format
//
//	[editor]
//	mode = "vi"
//	bell = "visible"
//
//	[search]
//	case_fold = true
//	active_region = true
//	bracketed_paste = true
//
//	[history]
//	file = "~/.keyline_history"
//	max_entries = 1000
//	watch = true
//	ignore_dups = true
//
//	[log]
//	level = "debug"
//	file = "/tmp/keyline.log"
//
//	[keys]
//	"C-r" = "non-incremental-reverse-search-history"
//	"vi-command:g" = "history-search-backward"
//
//	[script]
//	init = "~/.config/keyline/init.lua"
//
// Unknown keys are reported as parse errors.
//
// # Environment
//
// KEYLINE_EDITOR_MODE, KEYLINE_EDITOR_BELL, KEYLINE_SEARCH_CASE_FOLD,
// KEYLINE_SEARCH_ACTIVE_REGION, KEYLINE_SEARCH_BRACKETED_PASTE,
// KEYLINE_HISTORY_FILE, KEYLINE_HISTORY_MAX_ENTRIES, KEYLINE_HISTORY_WATCH,
// KEYLINE_HISTORY_IGNORE_DUPS, KEYLINE_LOG_LEVEL, KEYLINE_LOG_FILE and
// KEYLINE_SCRIPT_INIT override the matching file settings.
package config

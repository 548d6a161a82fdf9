package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/keyline/internal/display"
	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/input/key"
	"github.com/dshills/keyline/internal/input/keymap"
)

// DefaultMaxEntries is the default history size.
const DefaultMaxEntries = 500

// Config holds every keyline setting.
type Config struct {
	Editor  EditorConfig      `toml:"editor"`
	Search  SearchConfig      `toml:"search"`
	History HistoryConfig     `toml:"history"`
	Log     LogConfig         `toml:"log"`
	Keys    map[string]string `toml:"keys"`
	Script  ScriptConfig      `toml:"script"`
}

// EditorConfig is the [editor] section.
type EditorConfig struct {
	// Mode is "emacs" or "vi".
	Mode string `toml:"mode"`
	// Bell is "audible", "visible" or "none".
	Bell string `toml:"bell"`
}

// SearchConfig is the [search] section.
type SearchConfig struct {
	// CaseFold makes non-incremental substring searches ignore case.
	CaseFold bool `toml:"case_fold"`
	// ActiveRegion highlights the matched text after a search.
	ActiveRegion bool `toml:"active_region"`
	// BracketedPaste inserts pasted text literally into the search string.
	BracketedPaste bool `toml:"bracketed_paste"`
}

// HistoryConfig is the [history] section.
type HistoryConfig struct {
	// File is the history file. Empty disables persistence.
	File string `toml:"file"`
	// MaxEntries bounds the history; 0 means unbounded.
	MaxEntries int `toml:"max_entries"`
	// Watch reloads the file when another session rewrites it.
	Watch bool `toml:"watch"`
	// IgnoreDups skips a line equal to the newest entry.
	IgnoreDups bool `toml:"ignore_dups"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	Level string `toml:"level"`
	// File receives log output. Empty disables logging.
	File string `toml:"file"`
}

// ScriptConfig is the [script] section.
type ScriptConfig struct {
	// Init is a Lua file run once at startup.
	Init string `toml:"init"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			Mode: "emacs",
			Bell: "audible",
		},
		Search: SearchConfig{
			CaseFold:       false,
			ActiveRegion:   true,
			BracketedPaste: true,
		},
		History: HistoryConfig{
			MaxEntries: DefaultMaxEntries,
		},
		Log: LogConfig{
			Level: "info",
		},
		Keys: map[string]string{},
	}
}

// DefaultPath returns the user configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keyline", "config.toml")
}

var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks every setting and reports all failures at once.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if _, err := engine.ParseMode(c.Editor.Mode); err != nil {
		add("editor.mode", "must be emacs or vi", c.Editor.Mode)
	}
	if _, err := display.ParseBell(c.Editor.Bell); err != nil {
		add("editor.bell", "must be audible, visible or none", c.Editor.Bell)
	}
	if c.History.MaxEntries < 0 {
		add("history.max_entries", "must not be negative", c.History.MaxEntries)
	}
	if c.History.Watch && c.History.File == "" {
		add("history.watch", "requires history.file", c.History.Watch)
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		add("log.level", "must be debug, info, warn or error", c.Log.Level)
	}

	specs := make([]string, 0, len(c.Keys))
	for spec := range c.Keys {
		specs = append(specs, spec)
	}
	sort.Strings(specs)
	for _, spec := range specs {
		action := c.Keys[spec]
		_, keys := keymap.SplitSpec(spec, keymap.ModeEmacs)
		if _, err := key.Parse(keys); err != nil {
			add("keys."+spec, "invalid key", spec)
			continue
		}
		if !keymap.KnownAction(action) {
			add("keys."+spec, "unknown action", action)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditingMode returns the parsed editor mode.
func (c *Config) EditingMode() engine.Mode {
	m, _ := engine.ParseMode(c.Editor.Mode)
	return m
}

// BellStyle returns the parsed bell style.
func (c *Config) BellStyle() display.BellStyle {
	b, _ := display.ParseBell(c.Editor.Bell)
	return b
}

// HistoryFile returns the history file with ~ and environment variables
// expanded.
func (c *Config) HistoryFile() string {
	return ExpandPath(c.History.File)
}

// ExpandPath expands a leading ~ and $VAR references.
func ExpandPath(p string) string {
	if p == "" {
		return ""
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

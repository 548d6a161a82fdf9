package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
mode = "vi"
bell = "none"

[search]
case_fold = true
active_region = false

[history]
file = "/tmp/hist"
max_entries = 42
ignore_dups = true

[keys]
"C-r" = "non-incremental-reverse-search-history"
"vi-command:g" = "history-search-backward"

[script]
init = "init.lua"
`)

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Editor.Mode != "vi" || cfg.Editor.Bell != "none" {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if !cfg.Search.CaseFold || cfg.Search.ActiveRegion {
		t.Errorf("Search = %+v", cfg.Search)
	}
	if !cfg.Search.BracketedPaste {
		t.Error("unset bracketed_paste should keep its default")
	}
	if cfg.History.File != "/tmp/hist" || cfg.History.MaxEntries != 42 || !cfg.History.IgnoreDups {
		t.Errorf("History = %+v", cfg.History)
	}
	if got := cfg.Keys["C-r"]; got != "non-incremental-reverse-search-history" {
		t.Errorf("Keys[C-r] = %q", got)
	}
	if got := cfg.Keys["vi-command:g"]; got != "history-search-backward" {
		t.Errorf("Keys[vi-command:g] = %q", got)
	}
	if cfg.Script.Init != "init.lua" {
		t.Errorf("Script.Init = %q", cfg.Script.Init)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Errorf("missing file should not be an error: %v", err)
	}
	if cfg.Editor.Mode != "emacs" {
		t.Errorf("defaults changed: %+v", cfg.Editor)
	}
}

func TestLoadFileParseError(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
		message string
	}{
		{"syntax", "[editor]\nmode = \n", 2, ""},
		{"unknown setting", "[editor]\nmode = \"vi\"\ncolour = \"red\"\n", 3, "unknown setting editor.colour"},
		{"wrong type", "[history]\nmax_entries = \"lots\"\n", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			err := Default().LoadFile(path)

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("LoadFile() = %v, want *ParseError", err)
			}
			if perr.Path != path {
				t.Errorf("Path = %q, want %q", perr.Path, path)
			}
			if tt.line > 0 && perr.Line != tt.line {
				t.Errorf("Line = %d, want %d", perr.Line, tt.line)
			}
			if tt.message != "" && perr.Message != tt.message {
				t.Errorf("Message = %q, want %q", perr.Message, tt.message)
			}
			if perr.Unwrap() == nil {
				t.Error("ParseError should wrap the decoder error")
			}
		})
	}
}

func TestLoadFromReader(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadFromReader(strings.NewReader("[log]\nlevel = \"debug\"\n")); err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "[editor]\nmode = \"vi\"\n")
	t.Setenv("KEYLINE_EDITOR_BELL", "visible")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.Mode != "vi" {
		t.Errorf("Editor.Mode = %q, want vi", cfg.Editor.Mode)
	}
	if cfg.Editor.Bell != "visible" {
		t.Errorf("Editor.Bell = %q, want visible from environment", cfg.Editor.Bell)
	}
}

func TestLoadValidates(t *testing.T) {
	path := writeConfig(t, "[keys]\n\"C-r\" = \"frobnicate\"\n")
	if _, err := Load(path); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Load() = %v, want ErrValidationFailed", err)
	}
}

func newTestEnvLoader(env map[string]string) *EnvLoader {
	l := NewEnvLoader(EnvPrefix)
	l.lookup = func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
	l.environ = func() []string {
		out := make([]string, 0, len(env))
		for k, v := range env {
			out = append(out, k+"="+v)
		}
		return out
	}
	return l
}

func TestEnvLoader_Apply(t *testing.T) {
	l := newTestEnvLoader(map[string]string{
		"KEYLINE_EDITOR_MODE":         "vi",
		"KEYLINE_SEARCH_CASE_FOLD":    "yes",
		"KEYLINE_HISTORY_MAX_ENTRIES": "7",
		"KEYLINE_HISTORY_WATCH":       "on",
		"KEYLINE_HISTORY_FILE":        "/tmp/h",
		"KEYLINE_LOG_FILE":            "",
		"HOME":                        "/home/someone",
	})

	cfg := Default()
	cfg.Log.File = "/tmp/log"
	if err := l.Apply(cfg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if cfg.Editor.Mode != "vi" {
		t.Errorf("Editor.Mode = %q", cfg.Editor.Mode)
	}
	if !cfg.Search.CaseFold {
		t.Error("Search.CaseFold should be true")
	}
	if cfg.History.MaxEntries != 7 {
		t.Errorf("History.MaxEntries = %d", cfg.History.MaxEntries)
	}
	if !cfg.History.Watch || cfg.History.File != "/tmp/h" {
		t.Errorf("History = %+v", cfg.History)
	}
	if cfg.Log.File != "" {
		t.Errorf("empty value should count as set, Log.File = %q", cfg.Log.File)
	}
}

func TestEnvLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"bad bool", map[string]string{"KEYLINE_SEARCH_CASE_FOLD": "maybe"}, ErrValidationFailed},
		{"bad int", map[string]string{"KEYLINE_HISTORY_MAX_ENTRIES": "many"}, ErrValidationFailed},
		{"unknown", map[string]string{"KEYLINE_COLOUR": "red"}, ErrUnknownSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestEnvLoader(tt.env).Apply(Default())
			if !errors.Is(err, tt.want) {
				t.Errorf("Apply() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true}, {"YES", true}, {"on", true}, {"1", true},
		{"false", false}, {"no", false}, {"Off", false}, {"0", false},
	}
	for _, tt := range tests {
		got, err := parseBool(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseBool(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

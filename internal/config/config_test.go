package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keyline/internal/display"
	"github.com/dshills/keyline/internal/engine"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.Mode != "emacs" {
		t.Errorf("Editor.Mode = %q, want emacs", cfg.Editor.Mode)
	}
	if cfg.Search.CaseFold {
		t.Error("Search.CaseFold should default to false")
	}
	if !cfg.Search.ActiveRegion {
		t.Error("Search.ActiveRegion should default to true")
	}
	if !cfg.Search.BracketedPaste {
		t.Error("Search.BracketedPaste should default to true")
	}
	if cfg.History.MaxEntries != DefaultMaxEntries {
		t.Errorf("History.MaxEntries = %d, want %d", cfg.History.MaxEntries, DefaultMaxEntries)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"bad mode", func(c *Config) { c.Editor.Mode = "ed" }, "editor.mode"},
		{"bad bell", func(c *Config) { c.Editor.Bell = "loud" }, "editor.bell"},
		{"negative max", func(c *Config) { c.History.MaxEntries = -1 }, "history.max_entries"},
		{"watch without file", func(c *Config) { c.History.Watch = true }, "history.watch"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"unknown action", func(c *Config) { c.Keys["C-r"] = "frobnicate" }, "keys.C-r"},
		{"bad key", func(c *Config) { c.Keys["C-"] = "undo" }, "keys.C-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %T, want *ValidationError inside", err)
			}
			if verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Editor.Mode = "ed"
	cfg.Log.Level = "loud"

	var errs ValidationErrors
	if !errors.As(cfg.Validate(), &errs) {
		t.Fatal("expected ValidationErrors")
	}
	if len(errs) != 2 {
		t.Errorf("got %d errors, want 2", len(errs))
	}
}

func TestValidateModeSpecificKeys(t *testing.T) {
	cfg := Default()
	cfg.Keys["vi-command:g"] = "history-search-backward"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestParsedAccessors(t *testing.T) {
	cfg := Default()
	cfg.Editor.Mode = "vi"
	cfg.Editor.Bell = "visible"

	if cfg.EditingMode() != engine.ModeVi {
		t.Errorf("EditingMode() = %v, want vi", cfg.EditingMode())
	}
	if cfg.BellStyle() != display.BellVisible {
		t.Errorf("BellStyle() = %v, want visible", cfg.BellStyle())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	t.Setenv("KL_TEST_DIR", "/var/tmp")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/.keyline_history", filepath.Join(home, ".keyline_history")},
		{"$KL_TEST_DIR/hist", "/var/tmp/hist"},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

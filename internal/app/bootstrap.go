package app

import (
	"github.com/dshills/keyline/internal/config"
	"github.com/dshills/keyline/internal/editor"
	"github.com/dshills/keyline/internal/engine"
	"github.com/dshills/keyline/internal/history"
	"github.com/dshills/keyline/internal/input/keymap"
	"github.com/dshills/keyline/internal/script"
	"github.com/dshills/keyline/internal/search"
)

// bootstrap initializes all components in dependency order.
func (s *Session) bootstrap(opts Options) error {
	// 1. Configuration
	cfg, err := loadConfig(opts)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	s.cfg = cfg

	// 2. Logging
	out, closer, err := openLog(cfg.Log.File)
	if err != nil {
		return &InitError{Component: "log", Err: NewOperationError("open log", cfg.Log.File, err)}
	}
	s.logOut = closer
	base := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Log.Level),
		Output: out,
		Prefix: "keyline",
	})
	s.logger = base.WithField("session", s.id)
	s.logger.Info("session starting")

	// 3. History
	s.hist = history.NewList(
		history.WithMaxEntries(cfg.History.MaxEntries),
		history.WithIgnoreDups(cfg.History.IgnoreDups),
	)
	s.histPath = cfg.HistoryFile()
	if s.histPath != "" {
		if err := s.hist.LoadFile(s.histPath); err != nil {
			return &InitError{Component: "history", Err: NewOperationError("load history", s.histPath, err)}
		}
		s.logger.Debug("loaded %d history lines from %s", s.hist.Len(), s.histPath)
	}

	// 4. Terminal backend
	s.backend, err = newBackend(opts, cfg.BellStyle(), s.logger.WithComponent("backend"))
	if err != nil {
		return &InitError{Component: "backend", Err: err}
	}

	// 5. Editor
	s.editor, err = editor.New(s.hist, s.backend, s.backend,
		editor.WithEditingMode(cfg.EditingMode()),
		editor.WithLogger(s.logger.WithComponent("editor")),
		editor.WithBracketedPaste(cfg.Search.BracketedPaste),
		editor.WithSearchOptions(
			search.WithCaseFold(cfg.Search.CaseFold),
			search.WithActiveRegion(cfg.Search.ActiveRegion),
			search.WithBracketedPaste(cfg.Search.BracketedPaste),
			search.WithLogger(s.logger.WithComponent("search")),
		),
		editor.WithOnAccept(s.saveHistory),
	)
	if err != nil {
		return &InitError{Component: "editor", Err: err}
	}

	// 6. Configured key bindings
	if err := keymap.BindAll(s.editor.Keymaps(), defaultBindMode(cfg), cfg.Keys); err != nil {
		return &InitError{Component: "keys", Err: err}
	}

	// 7. Init script
	if cfg.Script.Init != "" {
		s.script = script.NewState(&scriptHost{session: s},
			script.WithLogger(s.logger.WithComponent("script")))
		if err := s.script.DoFile(config.ExpandPath(cfg.Script.Init)); err != nil {
			return &InitError{Component: "script", Err: err}
		}
	}

	// 8. History watcher
	if cfg.History.Watch && s.histPath != "" {
		s.watcher, err = history.NewWatcher(s.hist, s.histPath,
			history.WithLogger(s.logger.WithComponent("history")),
			history.WithOnReload(func(n int) {
				s.logger.Info("history reloaded by another session (%d lines)", n)
			}),
		)
		if err != nil {
			return &InitError{Component: "history watcher", Err: NewOperationError("watch", s.histPath, err)}
		}
	}

	return nil
}

func loadConfig(opts Options) (*config.Config, error) {
	cfg := opts.Config
	if cfg == nil {
		path := opts.ConfigPath
		if path == "" {
			path = config.DefaultPath()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.HistoryFile != "" {
		cfg.History.File = opts.HistoryFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultBindMode is the keymap a [keys] entry without a mode prefix
// binds in.
func defaultBindMode(cfg *config.Config) string {
	if cfg.EditingMode() == engine.ModeVi {
		return keymap.ModeViInsert
	}
	return keymap.ModeEmacs
}

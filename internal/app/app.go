// Package app wires keyline's components into an interactive session:
// configuration, logging, history persistence, the terminal backend, the
// line editor and the Lua init script.
package app

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/keyline/internal/config"
	"github.com/dshills/keyline/internal/editor"
	"github.com/dshills/keyline/internal/history"
	"github.com/dshills/keyline/internal/script"
)

// DefaultPrompt is shown when Options.Prompt is empty.
const DefaultPrompt = "> "

// Options configures a Session.
type Options struct {
	// ConfigPath is the configuration file. Empty uses config.DefaultPath.
	ConfigPath string

	// Config is used as-is instead of loading ConfigPath.
	Config *config.Config

	// Backend is "auto", "tcell" or "stream". Empty means "auto".
	Backend string

	// LogLevel overrides the configured log level.
	LogLevel string

	// HistoryFile overrides the configured history file.
	HistoryFile string

	// Prompt is the line prompt.
	Prompt string

	// Input and Output are used by the stream backend. They default to
	// os.Stdin and os.Stdout.
	Input  io.Reader
	Output io.Writer

	// Screen is used by the tcell backend instead of the real terminal.
	Screen tcell.Screen
}

// Session is one interactive line-reading session.
type Session struct {
	mu sync.Mutex

	id     string
	cfg    *config.Config
	logger *Logger
	logOut io.Closer

	hist     *history.List
	histPath string
	watcher  *history.Watcher

	backend backend
	editor  *editor.Editor
	script  *script.State

	prompt  string
	running atomic.Bool
	closed  bool
}

// New creates a session, bootstrapping every component in dependency
// order. On failure, anything already started is shut down.
func New(opts Options) (*Session, error) {
	s := &Session{
		id:     uuid.NewString(),
		prompt: opts.Prompt,
		logger: NullLogger,
	}
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}

	if err := s.bootstrap(opts); err != nil {
		_ = s.Shutdown()
		return nil, err
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns the effective configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Logger returns the session logger.
func (s *Session) Logger() *Logger {
	return s.logger
}

// History returns the session history.
func (s *Session) History() *history.List {
	return s.hist
}

// Editor returns the line editor.
func (s *Session) Editor() *editor.Editor {
	return s.editor
}

// openLog opens the configured log file, or discards output when none
// is set.
func openLog(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return io.Discard, nil, nil
	}
	f, err := os.OpenFile(config.ExpandPath(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

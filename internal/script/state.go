package script

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Logger is the logging interface used by scripts.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}

// Option configures a State.
type Option func(*State)

// WithTimeout sets the limit for one DoFile or DoString call.
func WithTimeout(d time.Duration) Option {
	return func(s *State) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger behind keyline.log.
func WithLogger(logger Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// State is a sandboxed Lua state bound to a Host.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes every
// entry from Go.
type State struct {
	mu sync.Mutex

	L       *lua.LState
	host    Host
	logger  Logger
	timeout time.Duration
	closed  bool
}

// NewState creates a sandboxed state with the keyline module installed.
func NewState(host Host, opts ...Option) *State {
	s := &State{
		host:    host,
		logger:  nopLogger{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	removeUnsafeGlobals(L)
	s.L = L
	s.installModule()
	return s
}

// openSafeLibraries opens only the libraries without file or process access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func removeUnsafeGlobals(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoFile runs the Lua file at path.
func (s *State) DoFile(path string) error {
	return s.run(path, func(L *lua.LState) error { return L.DoFile(path) })
}

// DoString runs a chunk of Lua code.
func (s *State) DoString(code string) error {
	return s.run("<string>", func(L *lua.LState) error { return L.DoString(code) })
}

func (s *State) run(source string, fn func(L *lua.LState) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return &Error{Path: source, Err: ErrStateClosed}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = &Error{Path: source, Err: fmt.Errorf("lua panic: %v", r)}
		}
	}()

	if err := fn(s.L); err != nil {
		if ctx.Err() != nil {
			return &Error{Path: source, Err: fmt.Errorf("%w: %v", ctx.Err(), err)}
		}
		return &Error{Path: source, Err: err}
	}
	return nil
}

// Global returns a global variable, for inspection by tests and hosts.
func (s *State) Global(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// Close releases the Lua state. It is safe to call more than once.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}

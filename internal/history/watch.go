package history

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Logger is the logging interface used by the watcher.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// DefaultDebounce is the quiet period before a changed file is reloaded.
const DefaultDebounce = 100 * time.Millisecond

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets the watcher's logger.
func WithLogger(logger Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithDebounce sets the reload delay.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnReload registers a callback run after each successful reload.
func WithOnReload(fn func(n int)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// Watcher reloads a List whenever its history file is rewritten.
// The parent directory is watched so atomic rename-into-place writes are
// seen.
type Watcher struct {
	mu sync.Mutex

	list *List
	path string

	watcher  *fsnotify.Watcher
	logger   Logger
	debounce time.Duration
	onReload func(n int)

	timer *time.Timer

	// suppress is the modification time of our own last save.
	suppress time.Time

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher starts watching path and reloading it into list.
func NewWatcher(list *List, path string, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		list:     list,
		path:     absPath,
		watcher:  fsw,
		logger:   nopLogger{},
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Save writes the list to the watched file without triggering a reload of
// our own write.
func (w *Watcher) Save() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}
	if err := w.list.SaveFile(w.path); err != nil {
		return err
	}
	w.suppress = modTime(w.path)
	return nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("history watch error: %v", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	if mt := modTime(w.path); !mt.IsZero() && mt.Equal(w.suppress) {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	if err := w.list.LoadFile(w.path); err != nil {
		w.logger.Error("history reload failed: %v", err)
		return
	}
	n := w.list.Len()
	w.logger.Debug("history reloaded from %s (%d lines)", w.path, n)
	if w.onReload != nil {
		w.onReload(n)
	}
}

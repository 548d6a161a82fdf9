package keymap

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/keyline/internal/input/key"
)

// Registry manages keymaps and resolves key events to bindings.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by name, in registration order.
	keymaps map[string]*Keymap
	order   []string

	// index maps mode and normalized event to the winning binding.
	index map[string]map[key.Event]Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*Keymap),
		index:   make(map[string]map[key.Event]Binding),
	}
}

// Register adds a keymap to the registry.
// If a keymap with the same name already exists, it is replaced.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}
	if err := km.Validate(); err != nil {
		return fmt.Errorf("registering keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keymaps[km.Name]; !exists {
		r.order = append(r.order, km.Name)
	}
	r.keymaps[km.Name] = km.Clone()
	r.rebuildLocked()
	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.keymaps[name]; !ok {
		return
	}
	delete(r.keymaps, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.rebuildLocked()
}

// Bind adds a single binding to the mode's user keymap, creating it on
// first use. User bindings take precedence over defaults.
func (r *Registry) Bind(mode, keys, action string) error {
	if !KnownMode(mode) {
		return fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}

	name := "user-" + mode
	r.mu.RLock()
	km, ok := r.keymaps[name]
	r.mu.RUnlock()

	if ok {
		km = km.Clone()
	} else {
		km = NewKeymap(name, mode).WithSource("user")
	}
	km.Add(keys, action)
	return r.Register(km)
}

// rebuildLocked recomputes the lookup index. Later keymaps override
// earlier ones. Caller must hold the write lock.
func (r *Registry) rebuildLocked() {
	r.index = make(map[string]map[key.Event]Binding)
	for _, name := range r.order {
		km := r.keymaps[name]
		m := r.index[km.Mode]
		if m == nil {
			m = make(map[key.Event]Binding)
			r.index[km.Mode] = m
		}
		for _, b := range km.Bindings {
			ev, err := b.Event()
			if err != nil {
				continue
			}
			m[ev.Normalize()] = b
		}
	}
}

// Lookup finds the binding for ev in mode.
func (r *Registry) Lookup(mode string, ev key.Event) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.index[mode][ev.Normalize()]
	return b, ok
}

// Get returns a copy of the named keymap.
func (r *Registry) Get(name string) (*Keymap, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	km, ok := r.keymaps[name]
	if !ok {
		return nil, false
	}
	return km.Clone(), true
}

// Names returns the registered keymap names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Bindings returns the effective bindings for mode, sorted by key.
func (r *Registry) Bindings(mode string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m := r.index[mode]
	out := make([]Binding, 0, len(m))
	for _, b := range m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].Keys, out[j].Keys) < 0
	})
	return out
}

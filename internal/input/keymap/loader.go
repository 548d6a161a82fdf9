package keymap

import (
	"fmt"
	"sort"
	"strings"
)

// BindAll applies a table of key specs to actions, as read from a
// configuration file. A spec may carry a mode prefix ("vi-command:n");
// without one it binds in defaultMode. Entries are applied in sorted
// order so the result does not depend on map iteration.
func BindAll(r *Registry, defaultMode string, table map[string]string) error {
	specs := make([]string, 0, len(table))
	for spec := range table {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	for _, spec := range specs {
		mode, keys := SplitSpec(spec, defaultMode)
		if err := r.Bind(mode, keys, table[spec]); err != nil {
			return fmt.Errorf("binding %q: %w", spec, err)
		}
	}
	return nil
}

// SplitSpec separates an optional mode prefix from a key spec.
func SplitSpec(spec, defaultMode string) (mode, keys string) {
	if i := strings.Index(spec, ":"); i > 0 && KnownMode(spec[:i]) {
		return spec[:i], spec[i+1:]
	}
	return defaultMode, spec
}

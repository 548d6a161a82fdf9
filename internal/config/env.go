package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// setter stores an environment value into a Config.
type setter func(c *Config, value string) error

// EnvLoader applies environment variable overrides.
type EnvLoader struct {
	prefix  string
	mapping map[string]setter
	lookup  func(string) (string, bool)
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix should include the trailing underscore (e.g., "KEYLINE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lookup:  os.LookupEnv,
		environ: os.Environ,
	}
}

// defaultEnvMapping maps setting names (after the prefix) to setters.
func defaultEnvMapping() map[string]setter {
	return map[string]setter{
		"EDITOR_MODE":            stringSetter(func(c *Config) *string { return &c.Editor.Mode }),
		"EDITOR_BELL":            stringSetter(func(c *Config) *string { return &c.Editor.Bell }),
		"SEARCH_CASE_FOLD":       boolSetter(func(c *Config) *bool { return &c.Search.CaseFold }),
		"SEARCH_ACTIVE_REGION":   boolSetter(func(c *Config) *bool { return &c.Search.ActiveRegion }),
		"SEARCH_BRACKETED_PASTE": boolSetter(func(c *Config) *bool { return &c.Search.BracketedPaste }),
		"HISTORY_FILE":           stringSetter(func(c *Config) *string { return &c.History.File }),
		"HISTORY_MAX_ENTRIES":    intSetter(func(c *Config) *int { return &c.History.MaxEntries }),
		"HISTORY_WATCH":          boolSetter(func(c *Config) *bool { return &c.History.Watch }),
		"HISTORY_IGNORE_DUPS":    boolSetter(func(c *Config) *bool { return &c.History.IgnoreDups }),
		"LOG_LEVEL":              stringSetter(func(c *Config) *string { return &c.Log.Level }),
		"LOG_FILE":               stringSetter(func(c *Config) *string { return &c.Log.File }),
		"SCRIPT_INIT":            stringSetter(func(c *Config) *string { return &c.Script.Init }),
	}
}

// Apply overrides c with every mapped variable that is set.
// Empty values count as set. Prefixed variables that name no setting are
// reported with ErrUnknownSetting.
func (l *EnvLoader) Apply(c *Config) error {
	for name, set := range l.mapping {
		val, ok := l.lookup(l.prefix + name)
		if !ok {
			continue
		}
		if err := set(c, val); err != nil {
			return fmt.Errorf("%s%s: %w", l.prefix, name, err)
		}
	}

	for _, env := range l.environ() {
		name, _, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, known := l.mapping[strings.TrimPrefix(name, l.prefix)]; !known {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
		}
	}
	return nil
}

func stringSetter(field func(*Config) *string) setter {
	return func(c *Config, value string) error {
		*field(c) = value
		return nil
	}
}

func boolSetter(field func(*Config) *bool) setter {
	return func(c *Config, value string) error {
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func intSetter(field func(*Config) *int) setter {
	return func(c *Config, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrValidationFailed, value)
		}
		*field(c) = n
		return nil
	}
}

// parseBool accepts the usual spellings of on and off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrValidationFailed, s)
	}
}

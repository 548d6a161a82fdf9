package search

// Option configures an Engine.
type Option func(*Engine)

// WithState shares a session-wide search state. By default each engine has
// its own.
func WithState(s *State) Option {
	return func(e *Engine) {
		if s != nil {
			e.state = s
		}
	}
}

// WithCaseFold makes non-incremental substring search case-insensitive.
func WithCaseFold(fold bool) Option {
	return func(e *Engine) {
		e.caseFold = fold
	}
}

// WithActiveRegion highlights the matched text after a successful
// non-incremental substring search.
func WithActiveRegion(enabled bool) Option {
	return func(e *Engine) {
		e.activeRegion = enabled
	}
}

// WithBracketedPaste lets a bracketed paste arrive in the search string.
func WithBracketedPaste(enabled bool) Option {
	return func(e *Engine) {
		e.bracketedPaste = enabled
	}
}

// WithCallbackMode makes Search return after setting up; keys are then fed
// through Step.
func WithCallbackMode(enabled bool) Option {
	return func(e *Engine) {
		e.callback = enabled
	}
}

// WithLogger sets the engine's logger.
func WithLogger(logger Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

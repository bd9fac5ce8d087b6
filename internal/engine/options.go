package engine

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial code points of the engine.
func WithContent(values []uint32) Option {
	return func(e *Engine) {
		e.initContent = values
	}
}

// WithReadOnly creates a read-only engine.
// Mutating commands will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}

package scoring

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTokenOverlapWeight sets the weight of the query token-overlap
// signal in relevance scoring.
func WithTokenOverlapWeight(w float64) Option {
	return func(e *Engine) {
		if w >= 0 {
			e.tokenOverlapWeight = w
		}
	}
}

// WithLocationWeight sets the weight added when the event location
// contains the query location.
func WithLocationWeight(w float64) Option {
	return func(e *Engine) {
		if w >= 0 {
			e.locationWeight = w
		}
	}
}

// WithTypeMatchWeight sets the weight added when the event's upstream
// type label equals the supplied type hint.
func WithTypeMatchWeight(w float64) Option {
	return func(e *Engine) {
		if w >= 0 {
			e.typeMatchWeight = w
		}
	}
}

// WithMinTokenLength sets the query token length cutoff; tokens of this
// length or shorter are dropped before overlap matching.
func WithMinTokenLength(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.minTokenLength = n
		}
	}
}

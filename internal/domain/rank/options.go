package rank

import (
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
)

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithEngine sets a custom scoring engine.
func WithEngine(e *scoring.Engine) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.engine = e
		}
	}
}

// WithRelevanceThreshold sets the relevance cutoff; events scoring at
// or below it are discarded.
func WithRelevanceThreshold(t float64) Option {
	return func(p *Pipeline) {
		if t >= 0 && t <= 1 {
			p.relevanceThreshold = t
		}
	}
}

// WithStudentThreshold sets the student-friendliness cutoff used by the
// student-only view.
func WithStudentThreshold(t float64) Option {
	return func(p *Pipeline) {
		if t >= 0 && t <= 1 {
			p.studentThreshold = t
		}
	}
}

// WithMaxResults sets the default result cap applied when a query does
// not specify its own.
func WithMaxResults(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxResults = n
		}
	}
}

// WithStrategy sets the default sort strategy.
func WithStrategy(s Strategy) Option {
	return func(p *Pipeline) {
		if s == StrategyRelevance || s == StrategyComposite {
			p.strategy = s
		}
	}
}

// WithCompositeWeights sets the relevance and student-friendliness
// weights of the composite ordering.
func WithCompositeWeights(relevance, student float64) Option {
	return func(p *Pipeline) {
		if relevance >= 0 && student >= 0 && relevance+student > 0 {
			p.compositeRelevance = relevance
			p.compositeStudent = student
		}
	}
}

// WithLogger sets a custom logger for the pipeline.
func WithLogger(l logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

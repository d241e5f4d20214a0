package app

import (
	"time"

	"github.com/okian/scout/internal/adapters/classify"
	"github.com/okian/scout/internal/adapters/source"
	"github.com/okian/scout/internal/domain/rank"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSources sets the event sources queried by Discover.
func WithSources(sources ...source.Source) Option {
	return func(s *Service) {
		s.sources = sources
	}
}

// WithClassifier sets an external query classifier. The keyword
// fallback still applies when it errors or is under-confident.
func WithClassifier(c classify.Classifier) Option {
	return func(s *Service) {
		s.classifier = c
	}
}

// WithMinConfidence sets the confidence floor under which the
// configured classifier is replaced by the keyword fallback.
func WithMinConfidence(c float64) Option {
	return func(s *Service) {
		if c >= 0 && c <= 1 {
			s.minConfidence = c
		}
	}
}

// WithEngine sets a custom scoring engine.
func WithEngine(e *scoring.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithPipeline sets a fully configured ranking pipeline, overriding
// the one the service would otherwise build from its engine.
func WithPipeline(p *rank.Pipeline) Option {
	return func(s *Service) {
		if p != nil {
			s.pipeline = p
		}
	}
}

// WithSourceTimeout bounds each source fetch.
func WithSourceTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sourceTimeout = d
		}
	}
}

// WithFetchConcurrency bounds how many sources are fetched at once.
func WithFetchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

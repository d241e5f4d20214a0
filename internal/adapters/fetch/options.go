package fetch

import (
	"time"

	"github.com/okian/scout/pkg/logger"
)

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithTimeout sets the per-source fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithConcurrency bounds the number of sources fetched at once.
func WithConcurrency(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(l logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// Package fetch fans a query out to every configured source with
// bounded concurrency and per-source timeouts, converting failures
// into inert envelopes instead of errors.
package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/okian/scout/internal/adapters/source"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Default pool configuration constants.
const (
	defaultTimeout     = 10 * time.Second
	defaultConcurrency = 4
)

// Pool collects scraping results from a fixed set of sources.
type Pool struct {
	sources     []source.Source
	timeout     time.Duration
	concurrency int
	log         logger.Logger
}

// New creates a fetch pool over the given sources.
func New(sources []source.Source, opts ...Option) *Pool {
	p := &Pool{
		sources:     sources,
		timeout:     defaultTimeout,
		concurrency: defaultConcurrency,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Collect runs every source concurrently and returns one envelope per
// source, in source order. A source error or timeout becomes a
// Success == false envelope; Collect itself never fails, so a caller
// always gets a full per-platform picture.
func (p *Pool) Collect(ctx context.Context, query, location string) []model.ScrapingResult {
	results := make([]model.ScrapingResult, len(p.sources))

	sem := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(i int, src source.Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = p.fetchOne(ctx, src, query, location)
		}(i, src)
	}
	wg.Wait()

	return results
}

// fetchOne runs a single source under the pool timeout.
func (p *Pool) fetchOne(ctx context.Context, src source.Source, query, location string) model.ScrapingResult {
	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	metrics.RecordSourceFetch(src.Name())

	res, err := src.Fetch(fetchCtx, query, location)
	metrics.RecordFetchDuration(src.Name(), time.Since(start).Seconds())

	if err != nil {
		metrics.RecordSourceFailure(src.Name())
		p.log.Warn(ctx, "source fetch failed",
			logger.String("platform", src.Name()),
			logger.Duration("took", time.Since(start)),
			logger.Error(err),
		)
		return model.ScrapingResult{
			Success:   false,
			Error:     err.Error(),
			Platform:  src.Name(),
			Query:     query,
			Location:  location,
			ScrapedAt: time.Now(),
		}
	}

	p.log.Debug(ctx, "source fetch complete",
		logger.String("platform", src.Name()),
		logger.Int("events", len(res.Events)),
		logger.Duration("took", time.Since(start)),
	)
	return res
}

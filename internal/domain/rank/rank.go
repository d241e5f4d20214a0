// Package rank orchestrates the event ranking pipeline: flatten,
// dedupe, score, categorize, extract keywords, filter, sort, truncate.
package rank

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/okian/scout/internal/domain/category"
	"github.com/okian/scout/internal/domain/dedupe"
	"github.com/okian/scout/internal/domain/keywords"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Strategy names a supported result ordering.
type Strategy string

// Supported strategies. Relevance is the primary ordering; composite
// biases toward student-friendliness.
const (
	StrategyRelevance Strategy = "relevance"
	StrategyComposite Strategy = "composite"
)

// ParseStrategy resolves a strategy name; empty means relevance.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyRelevance:
		return StrategyRelevance, nil
	case StrategyComposite:
		return StrategyComposite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Default pipeline configuration constants.
const (
	defaultRelevanceThreshold = 0.3
	defaultStudentThreshold   = 0.4
	defaultMaxResults         = 20
	defaultCompositeRelevance = 0.7
	defaultCompositeStudent   = 0.3
)

// Query carries the per-call ranking parameters. Zero values fall back
// to the pipeline defaults.
type Query struct {
	Text     string
	Location string
	// TypeHint overrides categorization for every event when set.
	TypeHint model.Category
	Strategy Strategy
	// StudentOnly requests the student-friendliness view. When that
	// view would be empty, the unfiltered relevance-sorted list is
	// returned instead of nothing.
	StudentOnly bool
	MaxResults  int
}

// PlatformReport is the per-platform slice of a Report.
type PlatformReport struct {
	Platform   string `json:"platform"`
	Success    bool   `json:"success"`
	EventCount int    `json:"event_count"`
	Error      string `json:"error,omitempty"`
}

// Report carries the aggregate counters callers surface alongside the
// ranked list.
type Report struct {
	TotalFound  int              `json:"total_found"`  // flattened from successful envelopes
	AfterDedupe int              `json:"after_dedupe"` // survivors of fingerprint dedup
	AfterFilter int              `json:"after_filter"` // survivors of the relevance threshold
	Returned    int              `json:"returned"`     // after view selection and truncation
	Platforms   []PlatformReport `json:"platforms"`
}

// Pipeline ranks raw per-platform scraping results into a filtered,
// ordered event list. A Pipeline holds no per-call state; concurrent
// Rank invocations need no synchronization.
type Pipeline struct {
	engine             *scoring.Engine
	relevanceThreshold float64
	studentThreshold   float64
	maxResults         int
	strategy           Strategy
	compositeRelevance float64
	compositeStudent   float64
	log                logger.Logger
}

// New creates a ranking pipeline with configuration options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		engine:             scoring.New(),
		relevanceThreshold: defaultRelevanceThreshold,
		studentThreshold:   defaultStudentThreshold,
		maxResults:         defaultMaxResults,
		strategy:           StrategyRelevance,
		compositeRelevance: defaultCompositeRelevance,
		compositeStudent:   defaultCompositeStudent,
		log:                logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rank runs the full pipeline. Failed envelopes are excluded from
// ranking and surfaced only through the report; a scoring failure on
// one candidate skips that candidate without aborting the batch. An
// empty input produces an empty output, never an error.
func (p *Pipeline) Rank(ctx context.Context, results []model.ScrapingResult, q Query) ([]model.ScoredEvent, Report, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRankDuration(time.Since(start).Seconds())
	}()

	strategy := q.Strategy
	if strategy == "" {
		strategy = p.strategy
	}
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, Report{}, err
	}
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = p.maxResults
	}

	report := Report{Platforms: make([]PlatformReport, 0, len(results))}

	// Flatten successful envelopes; failed platforms stay inert.
	var candidates []model.Candidate
	for _, res := range results {
		report.Platforms = append(report.Platforms, PlatformReport{
			Platform:   res.Platform,
			Success:    res.Success,
			EventCount: len(res.Events),
			Error:      res.Error,
		})
		if !res.Success {
			continue
		}
		candidates = append(candidates, res.Events...)
	}
	report.TotalFound = len(candidates)
	metrics.RecordCandidatesSeen(len(candidates))

	deduped := dedupe.Candidates(candidates)
	report.AfterDedupe = len(deduped)
	for i := report.AfterDedupe; i < report.TotalFound; i++ {
		metrics.RecordDuplicateDropped()
	}

	scored := make([]model.ScoredEvent, 0, len(deduped))
	for _, ev := range deduped {
		se, err := p.score(ev, q)
		if err != nil {
			metrics.RecordScoringFailure()
			p.log.Warn(ctx, "skipping candidate after scoring failure",
				logger.String("event_id", ev.NamespacedID()),
				logger.Error(err),
			)
			continue
		}
		metrics.RecordEventScored()
		if se.RelevanceScore > p.relevanceThreshold {
			scored = append(scored, se)
		}
	}
	report.AfterFilter = len(scored)

	p.sortEvents(scored, strategy)

	final := scored
	if q.StudentOnly {
		view := make([]model.ScoredEvent, 0, len(scored))
		for _, se := range scored {
			if se.StudentFriendlinessScore > p.studentThreshold {
				view = append(view, se)
			}
		}
		// Never let the secondary filter silently zero out a
		// non-empty result set.
		if len(view) > 0 {
			final = view
		} else if len(scored) > 0 {
			p.log.Info(ctx, "student-only view empty, falling back to full list",
				logger.Int("candidates", len(scored)),
			)
		}
	}

	if len(final) > maxResults {
		final = final[:maxResults]
	}
	report.Returned = len(final)
	metrics.RecordEventsReturned(len(final))
	metrics.UpdateLastResultCount(len(final))

	p.log.Debug(ctx, "ranking complete",
		logger.Int("total_found", report.TotalFound),
		logger.Int("after_dedupe", report.AfterDedupe),
		logger.Int("after_filter", report.AfterFilter),
		logger.Int("returned", report.Returned),
		logger.Duration("took", time.Since(start)),
	)
	return final, report, nil
}

// score derives a ScoredEvent from one candidate. A panic inside any
// scoring stage is converted to an error so one malformed candidate
// cannot abort the batch.
func (p *Pipeline) score(ev model.Candidate, q Query) (se model.ScoredEvent, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrScoringFailed, r)
		}
	}()

	relevance := p.engine.Relevance(ev, q.Text, q.Location, q.TypeHint)
	student := p.engine.StudentFriendliness(ev)

	eventType := q.TypeHint
	if eventType == "" {
		eventType = category.Categorize(ev)
	}

	return model.ScoredEvent{
		Candidate:                ev,
		RelevanceScore:           relevance,
		StudentFriendlinessScore: student,
		IsStudentFriendly:        scoring.IsStudentFriendly(student),
		EventType:                eventType,
		Keywords:                 keywords.Extract(ev),
	}, nil
}

// sortEvents orders events descending by the strategy's key. The sort
// is stable, so ties keep their first-occurrence order from dedup.
func (p *Pipeline) sortEvents(events []model.ScoredEvent, strategy Strategy) {
	key := func(se model.ScoredEvent) float64 {
		return se.RelevanceScore
	}
	if strategy == StrategyComposite {
		key = func(se model.ScoredEvent) float64 {
			return p.compositeRelevance*se.RelevanceScore + p.compositeStudent*se.StudentFriendlinessScore
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return key(events[i]) > key(events[j])
	})
}

// Package app provides the discovery service tying the classifier,
// source fan-out, and ranking pipeline together behind one call.
package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/okian/scout/internal/adapters/classify"
	"github.com/okian/scout/internal/adapters/fetch"
	"github.com/okian/scout/internal/adapters/source"
	"github.com/okian/scout/internal/domain/dedupe"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/rank"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultMinConfidence = 0.5
	defaultSourceTimeout = 10 * time.Second
	defaultConcurrency   = 4
)

// Query is a discovery request.
type Query struct {
	Text        string
	Location    string
	EventType   model.Category
	Strategy    rank.Strategy
	StudentOnly bool
	MaxResults  int
}

// Result is the full discovery response: the ranked events, the
// counters callers report, the intent that guided ranking, and a
// deterministic natural-language summary.
type Result struct {
	Events  []model.ScoredEvent `json:"events"`
	Report  rank.Report         `json:"report"`
	Intent  classify.Intent     `json:"intent"`
	Summary string              `json:"summary"`
}

// Service runs event discovery. It holds no per-request state, so
// concurrent Discover calls need no synchronization.
type Service struct {
	sources       []source.Source
	classifier    classify.Classifier
	fallback      *classify.KeywordClassifier
	engine        *scoring.Engine
	pipeline      *rank.Pipeline
	pool          *fetch.Pool
	minConfidence float64
	sourceTimeout time.Duration
	concurrency   int
	log           logger.Logger
}

// New creates a Service with configuration options. At least one
// source should be supplied; a service without sources always reports
// zero candidates.
func New(opts ...Option) *Service {
	s := &Service{
		fallback:      classify.NewKeywordClassifier(),
		engine:        scoring.New(),
		minConfidence: defaultMinConfidence,
		sourceTimeout: defaultSourceTimeout,
		concurrency:   defaultConcurrency,
		log:           logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pipeline == nil {
		s.pipeline = rank.New(rank.WithEngine(s.engine), rank.WithLogger(s.log))
	}
	s.pool = fetch.New(s.sources,
		fetch.WithTimeout(s.sourceTimeout),
		fetch.WithConcurrency(s.concurrency),
		fetch.WithLogger(s.log.Named("fetch")),
	)
	return s
}

// Discover interprets the query, collects candidates from every
// source, and ranks them. Partial source failures degrade gracefully;
// only an empty query text is rejected.
func (s *Service) Discover(ctx context.Context, q Query) (*Result, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, ErrEmptyQuery
	}

	intent := s.resolveIntent(ctx, q.Text)

	location := q.Location
	if location == "" {
		location = intent.Location
	}
	typeHint := q.EventType
	if typeHint == "" && len(intent.EventTypes) > 0 {
		typeHint = intent.EventTypes[0]
	}

	envelopes := s.pool.Collect(ctx, q.Text, location)

	events, report, err := s.pipeline.Rank(ctx, envelopes, rank.Query{
		Text:        q.Text,
		Location:    location,
		TypeHint:    typeHint,
		Strategy:    q.Strategy,
		StudentOnly: q.StudentOnly,
		MaxResults:  q.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("ranking failed: %w", err)
	}

	return &Result{
		Events:  events,
		Report:  report,
		Intent:  intent,
		Summary: summarize(q.Text, location, events, report),
	}, nil
}

// QualityOrder is the secondary path for sources with no query
// context: dedupe a flat candidate list and order it by the
// completeness score. Only the relative order is meaningful.
func (s *Service) QualityOrder(_ context.Context, events []model.Candidate) []model.Candidate {
	deduped := dedupe.Candidates(events)
	sort.SliceStable(deduped, func(i, j int) bool {
		return s.engine.Quality(deduped[i]) > s.engine.Quality(deduped[j])
	})
	return deduped
}

// Group partitions a flat candidate list into per-platform envelopes.
func (s *Service) Group(events []model.Candidate) []model.ScrapingResult {
	return model.GroupByPlatform(events)
}

// resolveIntent asks the configured classifier and falls back to the
// keyword rules whenever it is absent, erroring, or under-confident.
func (s *Service) resolveIntent(ctx context.Context, query string) classify.Intent {
	if s.classifier != nil {
		intent, err := s.classifier.Classify(ctx, query)
		if err == nil && intent.Confidence >= s.minConfidence {
			return intent
		}
		metrics.RecordClassifierFallback()
		if err != nil {
			s.log.Warn(ctx, "classifier failed, using keyword fallback", logger.Error(err))
		} else {
			s.log.Debug(ctx, "classifier under-confident, using keyword fallback",
				logger.Float64("confidence", intent.Confidence),
				logger.Float64("min_confidence", s.minConfidence),
			)
		}
	}
	intent, _ := s.fallback.Classify(ctx, query)
	return intent
}

// summarize builds the deterministic result summary. Free-form
// language generation is a collaborator's concern, not this service's.
func summarize(query, location string, events []model.ScoredEvent, report rank.Report) string {
	if len(events) == 0 {
		if location != "" {
			return fmt.Sprintf("No events matched %q in %s.", query, location)
		}
		return fmt.Sprintf("No events matched %q.", query)
	}

	students := 0
	for _, ev := range events {
		if ev.IsStudentFriendly {
			students++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d events for %q", len(events), query)
	if location != "" {
		fmt.Fprintf(&b, " in %s", location)
	}
	fmt.Fprintf(&b, " (%d candidates before filtering)", report.TotalFound)
	fmt.Fprintf(&b, "; top category %s", topCategory(events))
	if students > 0 {
		fmt.Fprintf(&b, ", %d student-friendly", students)
	}
	b.WriteString(".")
	return b.String()
}

// topCategory returns the most frequent category, first-seen winning
// ties so the summary stays deterministic.
func topCategory(events []model.ScoredEvent) model.Category {
	counts := make(map[model.Category]int, len(events))
	var order []model.Category
	for _, ev := range events {
		if counts[ev.EventType] == 0 {
			order = append(order, ev.EventType)
		}
		counts[ev.EventType]++
	}
	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

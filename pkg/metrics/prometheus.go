// Package metrics provides Prometheus metrics for the scout event
// discovery pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns all Prometheus metrics for the pipeline.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  prometheus.Registerer

	// Pipeline metrics
	candidatesSeen    prometheus.Counter
	duplicatesDropped prometheus.Counter
	eventsScored      prometheus.Counter
	eventsReturned    prometheus.Counter
	scoringFailures   prometheus.Counter
	rankDuration      prometheus.Histogram

	// Source metrics
	sourceFetches   *prometheus.CounterVec
	sourceFailures  *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	lastResultCount prometheus.Gauge

	// Classifier metrics
	classifierFallbacks prometheus.Counter
}

// Global metrics manager on a custom registry, keeping default Go
// runtime collectors out of the way.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // backing registry for the singleton

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "scout",
		subsystem: "pipeline",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	auto := promauto.With(m.registry)

	m.candidatesSeen = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_seen_total",
		Help:      "Total candidates flattened from successful source envelopes",
	})
	m.duplicatesDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicates_dropped_total",
		Help:      "Total candidates dropped by fingerprint deduplication",
	})
	m.eventsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_scored_total",
		Help:      "Total candidates scored successfully",
	})
	m.eventsReturned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_returned_total",
		Help:      "Total events returned to callers after filtering and truncation",
	})
	m.scoringFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_failures_total",
		Help:      "Total candidates skipped due to a scoring failure",
	})
	m.rankDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_duration_seconds",
		Help:      "Histogram of full ranking pipeline duration",
		Buckets:   m.buckets,
	})

	m.sourceFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "source",
		Name:      "fetches_total",
		Help:      "Total fetch attempts per source platform",
	}, []string{"platform"})
	m.sourceFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "source",
		Name:      "failures_total",
		Help:      "Total failed fetches per source platform",
	}, []string{"platform"})
	m.fetchDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "source",
		Name:      "fetch_duration_seconds",
		Help:      "Histogram of per-source fetch duration",
		Buckets:   m.buckets,
	}, []string{"platform"})
	m.lastResultCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_result_count",
		Help:      "Number of events returned by the most recent ranking call",
	})

	m.classifierFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "classify",
		Name:      "fallbacks_total",
		Help:      "Times the keyword fallback replaced the configured classifier",
	})
}

// Handler exposes the custom registry for embedding applications; the
// library itself binds no HTTP routes.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// Package-level record helpers on the global manager.

func RecordCandidatesSeen(n int)     { globalManager.candidatesSeen.Add(float64(n)) }
func RecordDuplicateDropped()        { globalManager.duplicatesDropped.Inc() }
func RecordEventScored()             { globalManager.eventsScored.Inc() }
func RecordEventsReturned(n int)     { globalManager.eventsReturned.Add(float64(n)) }
func RecordScoringFailure()          { globalManager.scoringFailures.Inc() }
func RecordRankDuration(sec float64) { globalManager.rankDuration.Observe(sec) }
func RecordClassifierFallback()      { globalManager.classifierFallbacks.Inc() }

func RecordSourceFetch(platform string) {
	globalManager.sourceFetches.WithLabelValues(platform).Inc()
}

func RecordSourceFailure(platform string) {
	globalManager.sourceFailures.WithLabelValues(platform).Inc()
}

func RecordFetchDuration(platform string, sec float64) {
	globalManager.fetchDuration.WithLabelValues(platform).Observe(sec)
}

func UpdateLastResultCount(n int) {
	globalManager.lastResultCount.Set(float64(n))
}

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) with defaults and Load(ctx) layering file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MaxResults caps the ranked result list per query.
	MaxResults int `koanf:"max_results"`

	// RelevanceThreshold discards events scoring at or below it.
	RelevanceThreshold float64 `koanf:"relevance_threshold"`

	// StudentThreshold gates the student-only result view.
	StudentThreshold float64 `koanf:"student_threshold"`

	// SortStrategy selects the default ordering: relevance, composite.
	SortStrategy string `koanf:"sort_strategy"`

	// CompositeRelevanceWeight and CompositeStudentWeight shape the
	// composite ordering key.
	CompositeRelevanceWeight float64 `koanf:"composite_relevance_weight"`
	CompositeStudentWeight   float64 `koanf:"composite_student_weight"`

	// SourceTimeoutMS bounds each source fetch.
	SourceTimeoutMS int `koanf:"source_timeout_ms"`

	// FetchConcurrency bounds how many sources are fetched at once.
	FetchConcurrency int `koanf:"fetch_concurrency"`

	// ClassifierMinConfidence is the confidence floor under which the
	// configured classifier is replaced by the keyword fallback.
	ClassifierMinConfidence float64 `koanf:"classifier_min_confidence"`

	// FixtureDatasetSize sizes the generated dataset of the built-in
	// fixture source used by the CLI.
	FixtureDatasetSize int `koanf:"fixture_dataset_size"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:                 "info",
		MaxResults:               20,
		RelevanceThreshold:       0.3,
		StudentThreshold:         0.4,
		SortStrategy:             "relevance",
		CompositeRelevanceWeight: 0.7,
		CompositeStudentWeight:   0.3,
		SourceTimeoutMS:          10_000,
		FetchConcurrency:         4,
		ClassifierMinConfidence:  0.5,
		FixtureDatasetSize:       40,
	}
}

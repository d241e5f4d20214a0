package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SCOUT_CONFIG is set
//  3. env (prefix SCOUT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SCOUT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: SCOUT_MAX_RESULTS, SCOUT_SORT_STRATEGY, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("SCOUT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "scout_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the pipeline cannot honor.
func validate(cfg *Config) error {
	if cfg.MaxResults <= 0 {
		return fmt.Errorf("%w: max_results must be positive", ErrInvalidConfig)
	}
	if cfg.RelevanceThreshold < 0 || cfg.RelevanceThreshold > 1 {
		return fmt.Errorf("%w: relevance_threshold must be in [0,1]", ErrInvalidConfig)
	}
	if cfg.StudentThreshold < 0 || cfg.StudentThreshold > 1 {
		return fmt.Errorf("%w: student_threshold must be in [0,1]", ErrInvalidConfig)
	}
	switch cfg.SortStrategy {
	case "relevance", "composite":
	default:
		return fmt.Errorf("%w: unknown sort_strategy %q", ErrInvalidConfig, cfg.SortStrategy)
	}
	if cfg.SourceTimeoutMS <= 0 {
		return fmt.Errorf("%w: source_timeout_ms must be positive", ErrInvalidConfig)
	}
	if cfg.FetchConcurrency <= 0 {
		return fmt.Errorf("%w: fetch_concurrency must be positive", ErrInvalidConfig)
	}
	return nil
}

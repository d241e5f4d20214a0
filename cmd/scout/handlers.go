package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/okian/scout/internal/adapters/source"
	"github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/config"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/rank"
	"github.com/okian/scout/pkg/logger"
)

const datasetFilePermission = 0o600

type rankParams struct {
	query       string
	location    string
	eventType   string
	strategy    string
	limit       int
	studentOnly bool
	jsonOutput  bool
	dataFiles   []string
	fixtures    int
}

// setup loads configuration and initializes logging. The --config flag
// wins over an already-set SCOUT_CONFIG.
func setup(ctx context.Context) (*config.Config, error) {
	if cfgFile != "" {
		if err := os.Setenv("SCOUT_CONFIG", cfgFile); err != nil {
			return nil, err
		}
	}
	if err := logger.Init(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return cfg, nil
}

// buildSources assembles file sources plus an optional generated
// fixture source. With no flags at all, a config-sized fixture source
// keeps the command usable out of the box.
func buildSources(cfg *config.Config, dataFiles []string, fixtures int) []source.Source {
	var sources []source.Source
	for i, path := range dataFiles {
		name := fmt.Sprintf("file-%d", i+1)
		if len(dataFiles) == 1 {
			name = "file"
		}
		sources = append(sources, source.NewFileSource(name, path))
	}
	if fixtures > 0 {
		sources = append(sources, source.NewFixtureSource(source.WithGeneratedDataset(fixtures)))
	}
	if len(sources) == 0 {
		sources = append(sources, source.NewFixtureSource(
			source.WithGeneratedDataset(cfg.FixtureDatasetSize),
		))
	}
	return sources
}

func runRank(p rankParams) error {
	ctx := context.Background()
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	strategyName := p.strategy
	if strategyName == "" {
		strategyName = cfg.SortStrategy
	}
	strategy, err := rank.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	svc := app.New(
		app.WithLogger(logger.Get()),
		app.WithSources(buildSources(cfg, p.dataFiles, p.fixtures)...),
		app.WithMinConfidence(cfg.ClassifierMinConfidence),
		app.WithSourceTimeout(time.Duration(cfg.SourceTimeoutMS)*time.Millisecond),
		app.WithFetchConcurrency(cfg.FetchConcurrency),
		app.WithPipeline(rank.New(
			rank.WithRelevanceThreshold(cfg.RelevanceThreshold),
			rank.WithStudentThreshold(cfg.StudentThreshold),
			rank.WithMaxResults(cfg.MaxResults),
			rank.WithStrategy(strategy),
			rank.WithCompositeWeights(cfg.CompositeRelevanceWeight, cfg.CompositeStudentWeight),
			rank.WithLogger(logger.Get().Named("rank")),
		)),
	)

	// An empty --type must stay an empty hint; parsing it would turn
	// it into the general category and override categorization.
	var typeHint model.Category
	if p.eventType != "" {
		typeHint = model.ParseCategory(p.eventType)
	}

	result, err := svc.Discover(ctx, app.Query{
		Text:        p.query,
		Location:    p.location,
		EventType:   typeHint,
		Strategy:    strategy,
		StudentOnly: p.studentOnly,
		MaxResults:  p.limit,
	})
	if err != nil {
		return err
	}

	if p.jsonOutput {
		return printJSON(result)
	}
	printResult(result)
	return nil
}

func runFixtures(count int, output string) error {
	ctx := context.Background()
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	if count <= 0 {
		count = cfg.FixtureDatasetSize
	}

	data, err := json.MarshalIndent(source.Generate(count), "", "  ")
	if err != nil {
		return err
	}
	if output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, datasetFilePermission); err != nil {
		return err
	}
	logger.Get().Info(ctx, "dataset written",
		logger.String("output", output), logger.Int("count", count))
	return nil
}

func runCatalog(dataFiles []string) error {
	ctx := context.Background()
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	sources := buildSources(cfg, dataFiles, 0)
	svc := app.New(
		app.WithLogger(logger.Get()),
		app.WithSources(sources...),
		app.WithSourceTimeout(time.Duration(cfg.SourceTimeoutMS)*time.Millisecond),
		app.WithFetchConcurrency(cfg.FetchConcurrency),
	)

	// Catalog has no query context; ordering uses the completeness
	// path instead of relevance.
	var all []model.Candidate
	for _, src := range sources {
		res, err := src.Fetch(ctx, "", "")
		if err != nil {
			logger.Get().Warn(ctx, "source failed",
				logger.String("platform", src.Name()), logger.Error(err))
			continue
		}
		all = append(all, res.Events...)
	}

	ordered := svc.QualityOrder(ctx, all)
	for _, env := range svc.Group(ordered) {
		fmt.Printf("%s (%d events)\n", env.Platform, len(env.Events))
	}
	for i, ev := range ordered {
		fmt.Printf("%3d. %-45s %s\n", i+1, ev.Title, ev.Location)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printResult(result *app.Result) {
	fmt.Println(result.Summary)
	fmt.Println()
	for i, ev := range result.Events {
		marker := " "
		if ev.IsStudentFriendly {
			marker = "*"
		}
		fmt.Printf("%3d.%s %-40s %-14s rel=%.2f stu=%.2f %s\n",
			i+1, marker, ev.Title, ev.EventType, ev.RelevanceScore,
			ev.StudentFriendlinessScore, ev.Location)
	}
	fmt.Println()
	for _, p := range result.Report.Platforms {
		status := "ok"
		if !p.Success {
			status = "failed: " + p.Error
		}
		fmt.Printf("  %-12s %3d events  %s\n", p.Platform, p.EventCount, status)
	}
}

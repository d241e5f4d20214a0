package source

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okian/scout/internal/domain/model"
)

// DefaultFixturePlatform tags candidates produced by FixtureSource.
const DefaultFixturePlatform = "fixture"

// FixtureSource serves a read-only in-memory dataset. It replaces the
// appendable process-wide mock list of earlier designs: the dataset is
// injected at construction and never mutated afterwards.
type FixtureSource struct {
	name    string
	dataset []model.Candidate
}

// FixtureOption applies a configuration option to the FixtureSource.
type FixtureOption func(*FixtureSource)

// WithName sets the platform tag reported by the source.
func WithName(name string) FixtureOption {
	return func(s *FixtureSource) {
		if name != "" {
			s.name = name
		}
	}
}

// WithDataset seeds the source with a fixed candidate set. The slice
// is copied so later caller mutations cannot leak in.
func WithDataset(dataset []model.Candidate) FixtureOption {
	return func(s *FixtureSource) {
		s.dataset = make([]model.Candidate, len(dataset))
		copy(s.dataset, dataset)
	}
}

// WithGeneratedDataset seeds the source with n synthetic candidates.
func WithGeneratedDataset(n int) FixtureOption {
	return func(s *FixtureSource) {
		s.dataset = Generate(n)
	}
}

// NewFixtureSource creates a fixture source with configuration options.
func NewFixtureSource(opts ...FixtureOption) *FixtureSource {
	s := &FixtureSource{name: DefaultFixturePlatform}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the platform tag.
func (s *FixtureSource) Name() string { return s.name }

// Fetch returns the full dataset in a Success envelope. Relevance
// filtering is the ranking pipeline's job, not the source's.
func (s *FixtureSource) Fetch(ctx context.Context, query, location string) (model.ScrapingResult, error) {
	select {
	case <-ctx.Done():
		return model.ScrapingResult{}, ctx.Err()
	default:
	}

	events := make([]model.Candidate, len(s.dataset))
	copy(events, s.dataset)
	for i := range events {
		events[i].Platform = s.name
	}

	return model.ScrapingResult{
		Success:   true,
		Events:    events,
		Platform:  s.name,
		Query:     query,
		Location:  location,
		ScrapedAt: time.Now(),
	}, nil
}

// fixtureSeed is one synthetic event template.
type fixtureSeed struct {
	title       string
	description string
	price       string
	tags        []string
}

// fixtureSeeds spans the category table and the student-friendliness
// vocabulary so generated datasets exercise every pipeline stage.
var fixtureSeeds = []fixtureSeed{
	{
		title:       "Student Bar Night",
		description: "Cheap drinks, free entry, and a student discount at the downtown bar",
		price:       "free",
		tags:        []string{"nightlife", "student"},
	},
	{
		title:       "International Meetup for Exchange Students",
		description: "Meet international and study abroad students over free snacks on campus",
		price:       "free",
		tags:        []string{"social"},
	},
	{
		title:       "Museum Late: Modern Art",
		description: "An evening culture tour through the museum's modern art wing",
		price:       "12 EUR",
		tags:        []string{"cultural"},
	},
	{
		title:       "Sunrise Hiking Tour",
		description: "Guided nature hike through the national park, all ages welcome",
		price:       "25 EUR",
		tags:        []string{"outdoor"},
	},
	{
		title:       "Startup Networking Breakfast",
		description: "Professional networking for business students and young founders",
		price:       "10 EUR",
		tags:        []string{"networking"},
	},
	{
		title:       "DIY Pottery Workshop",
		description: "A hands-on skill workshop, materials included, budget friendly",
		price:       "15 EUR",
		tags:        []string{"workshop"},
	},
	{
		title:       "Rooftop Concert Tonight",
		description: "Live show and performance with affordable drinks this weekend",
		price:       "20 EUR",
		tags:        []string{"entertainment"},
	},
	{
		title:       "University Food Festival",
		description: "Dining stands from every campus restaurant, eat cheap all weekend",
		price:       "free",
		tags:        []string{"food"},
	},
}

// fixtureCities rotates on a stride co-prime with the seed count, so
// title+location pairs stay distinct and generated datasets do not
// collapse under fingerprint dedup.
var fixtureCities = []string{
	"Barcelona", "Madrid", "Paris", "Berlin", "Lisbon", "Rome", "Amsterdam",
}

// Generate produces n synthetic candidates cycling through the seed
// templates, each with a fresh uuid.
func Generate(n int) []model.Candidate {
	if n <= 0 {
		return nil
	}
	now := time.Now()
	out := make([]model.Candidate, n)
	for i := 0; i < n; i++ {
		seed := fixtureSeeds[i%len(fixtureSeeds)]
		out[i] = model.Candidate{
			ID:          uuid.New().String(),
			Title:       seed.title,
			Description: seed.description,
			Location:    fixtureCities[i%len(fixtureCities)],
			DateTime:    now.AddDate(0, 0, i%14).Format(time.RFC3339),
			Platform:    DefaultFixturePlatform,
			Price:       seed.price,
			Tags:        append([]string(nil), seed.tags...),
		}
	}
	return out
}

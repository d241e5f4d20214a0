package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/scout/internal/adapters/classify"
	"github.com/okian/scout/internal/adapters/source"
	"github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// stubClassifier scripts the configured classifier's answer.
type stubClassifier struct {
	intent classify.Intent
	err    error
}

func (s *stubClassifier) Classify(context.Context, string) (classify.Intent, error) {
	return s.intent, s.err
}

func fixtureDataset() []model.Candidate {
	return []model.Candidate{
		{
			ID:          "1",
			Title:       "Student Bar Night",
			Description: "Cheap drinks and a student discount at the downtown bar tonight",
			Location:    "Barcelona",
			DateTime:    "2026-09-04T21:00:00Z",
		},
		{
			ID:          "2",
			Title:       "Quarterly Tax Filing Deadline",
			Description: "Submit the forms",
			Location:    "Oslo",
		},
	}
}

func newService(opts ...app.Option) *app.Service {
	src := source.NewFixtureSource(
		source.WithName("instagram"),
		source.WithDataset(fixtureDataset()),
	)
	return app.New(append([]app.Option{app.WithSources(src)}, opts...)...)
}

func TestDiscover(t *testing.T) {
	Convey("Given a discovery service over a fixture source", t, func() {
		svc := newService()

		Convey("When discovering with a location-bearing query", func() {
			res, err := svc.Discover(context.Background(), app.Query{Text: "student bar night in barcelona"})

			Convey("Then only the relevant candidate survives", func() {
				So(err, ShouldBeNil)
				So(res.Events, ShouldHaveLength, 1)
				So(res.Events[0].Title, ShouldEqual, "Student Bar Night")
				So(res.Events[0].RelevanceScore, ShouldBeGreaterThan, 0.3)
			})

			Convey("And the keyword fallback produced the intent", func() {
				So(res.Intent.IsEventSearch, ShouldBeTrue)
				So(res.Intent.Location, ShouldEqual, "barcelona")
			})

			Convey("And the report accounts for the whole dataset", func() {
				So(res.Report.TotalFound, ShouldEqual, 2)
				So(res.Report.Returned, ShouldEqual, 1)
				So(res.Report.Platforms, ShouldHaveLength, 1)
				So(res.Report.Platforms[0].Platform, ShouldEqual, "instagram")
			})

			Convey("And the summary is deterministic", func() {
				So(res.Summary, ShouldContainSubstring, "Found 1 events")
				So(res.Summary, ShouldContainSubstring, "in barcelona")
				So(res.Summary, ShouldContainSubstring, "(2 candidates before filtering)")
			})
		})

		Convey("When the query text is blank", func() {
			_, err := svc.Discover(context.Background(), app.Query{Text: "   "})

			Convey("Then the request is rejected", func() {
				So(errors.Is(err, app.ErrEmptyQuery), ShouldBeTrue)
			})
		})
	})
}

func TestDiscover_ClassifierFallback(t *testing.T) {
	Convey("Given a configured classifier", t, func() {
		Convey("When it answers confidently", func() {
			svc := newService(app.WithClassifier(&stubClassifier{
				intent: classify.Intent{
					IsEventSearch: true,
					Location:      "madrid",
					Confidence:    0.9,
				},
			}))
			res, err := svc.Discover(context.Background(), app.Query{Text: "student bar night"})

			Convey("Then its intent is honored", func() {
				So(err, ShouldBeNil)
				So(res.Intent.Location, ShouldEqual, "madrid")
			})
		})

		Convey("When it errors", func() {
			svc := newService(app.WithClassifier(&stubClassifier{err: errors.New("model offline")}))
			res, err := svc.Discover(context.Background(), app.Query{Text: "student bar night in barcelona"})

			Convey("Then the keyword fallback takes over", func() {
				So(err, ShouldBeNil)
				So(res.Intent.Location, ShouldEqual, "barcelona")
				So(res.Events, ShouldHaveLength, 1)
			})
		})

		Convey("When it answers under the confidence floor", func() {
			svc := newService(app.WithClassifier(&stubClassifier{
				intent: classify.Intent{Location: "oslo", Confidence: 0.2},
			}))
			res, err := svc.Discover(context.Background(), app.Query{Text: "student bar night in barcelona"})

			Convey("Then the keyword fallback takes over", func() {
				So(err, ShouldBeNil)
				So(res.Intent.Location, ShouldEqual, "barcelona")
			})
		})
	})
}

func TestQualityOrder(t *testing.T) {
	Convey("Given candidates of varying completeness", t, func() {
		svc := app.New()
		rich := model.Candidate{
			ID:          "1",
			Title:       "Campus Festival",
			Description: "A festival on campus",
			Location:    "Berlin",
			DateTime:    "2026-09-04T12:00:00Z",
			ImageURL:    "https://example.com/a.jpg",
			Organizer:   "Student Union",
			Price:       "free",
			Tags:        []string{"festival"},
		}
		sparse := model.Candidate{ID: "2", Title: "Lecture"}
		duplicate := rich
		duplicate.ID = "3"
		duplicate.Platform = "meetup"

		Convey("When ordering by quality", func() {
			out := svc.QualityOrder(context.Background(), []model.Candidate{sparse, rich, duplicate})

			Convey("Then duplicates collapse and richer events rank first", func() {
				So(out, ShouldHaveLength, 2)
				So(out[0].Title, ShouldEqual, "Campus Festival")
				So(out[1].Title, ShouldEqual, "Lecture")
			})
		})
	})
}

func TestGroup(t *testing.T) {
	Convey("Given a mixed-platform candidate list", t, func() {
		svc := app.New()
		events := []model.Candidate{
			{ID: "1", Platform: "instagram"},
			{ID: "2", Platform: "meetup"},
			{ID: "3", Platform: "instagram"},
		}

		Convey("When grouping", func() {
			groups := svc.Group(events)

			Convey("Then platforms keep first-appearance order", func() {
				So(groups, ShouldHaveLength, 2)
				So(groups[0].Platform, ShouldEqual, "instagram")
				So(groups[0].Events, ShouldHaveLength, 2)
				So(groups[1].Platform, ShouldEqual, "meetup")
			})
		})
	})
}

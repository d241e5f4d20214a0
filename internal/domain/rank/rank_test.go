package rank_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func candidate(id, title, desc, location, platform string) model.Candidate {
	return model.Candidate{
		ID:          id,
		Title:       title,
		Description: desc,
		Location:    location,
		Platform:    platform,
	}
}

func envelope(platform string, events ...model.Candidate) model.ScrapingResult {
	return model.ScrapingResult{Success: true, Platform: platform, Events: events}
}

func TestRank(t *testing.T) {
	Convey("Given a default ranking pipeline", t, func() {
		p := rank.New()
		ctx := context.Background()

		Convey("When ranking candidates from several platforms", func() {
			results := []model.ScrapingResult{
				envelope("instagram",
					candidate("1", "Student party night", "a huge student party with cheap drinks and free entry for everyone", "Barcelona", "instagram"),
					candidate("2", "Quiet chess corner", "", "", "instagram"),
				),
				envelope("reddit",
					candidate("3", "student party night!", "same event reposted", "barcelona", "reddit"),
					candidate("4", "Student meetup in the park", "international students meet for a free picnic and social games", "Barcelona", "reddit"),
				),
			}

			events, report, err := p.Rank(ctx, results, rank.Query{
				Text:     "student party",
				Location: "barcelona",
			})

			Convey("Then duplicates collapse and weak candidates are filtered", func() {
				So(err, ShouldBeNil)
				So(report.TotalFound, ShouldEqual, 4)
				So(report.AfterDedupe, ShouldEqual, 3)
				So(events, ShouldHaveLength, 2) // chess corner fails the threshold

				Convey("And the first survivor of a duplicate pair wins", func() {
					So(events[0].Platform, ShouldEqual, "instagram")
				})
			})

			Convey("Then ordering is by relevance descending", func() {
				So(err, ShouldBeNil)
				So(events[0].RelevanceScore, ShouldBeGreaterThanOrEqualTo, events[1].RelevanceScore)
			})

			Convey("Then scores respect their invariants", func() {
				for _, ev := range events {
					So(ev.RelevanceScore, ShouldBeBetweenOrEqual, 0.0, 1.0)
					So(ev.StudentFriendlinessScore, ShouldBeBetweenOrEqual, 0.0, 1.0)
					So(ev.IsStudentFriendly, ShouldEqual, ev.StudentFriendlinessScore > 0.6)
				}
			})

			Convey("Then counters are consistent", func() {
				So(report.AfterFilter, ShouldBeLessThanOrEqualTo, report.AfterDedupe)
				So(report.AfterDedupe, ShouldBeLessThanOrEqualTo, report.TotalFound)
				So(report.Returned, ShouldEqual, len(events))
			})
		})

		Convey("When one platform failed", func() {
			results := []model.ScrapingResult{
				{Success: false, Platform: "tiktok", Error: "rate limited"},
				envelope("reddit",
					candidate("1", "Student party", "free student party with cheap drinks all night long tonight", "Madrid", "reddit"),
				),
			}

			events, report, err := p.Rank(ctx, results, rank.Query{Text: "student party", Location: "madrid"})

			Convey("Then only the successful platform contributes events", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 1)
				So(events[0].Platform, ShouldEqual, "reddit")
				So(report.TotalFound, ShouldEqual, 1)
			})

			Convey("And the failure is surfaced in the per-platform report", func() {
				So(report.Platforms, ShouldHaveLength, 2)
				So(report.Platforms[0].Success, ShouldBeFalse)
				So(report.Platforms[0].Error, ShouldEqual, "rate limited")
				So(report.Platforms[1].Success, ShouldBeTrue)
			})
		})

		Convey("When the input is empty", func() {
			events, report, err := p.Rank(ctx, nil, rank.Query{Text: "anything"})

			Convey("Then the output is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(events, ShouldBeEmpty)
				So(report.TotalFound, ShouldEqual, 0)
				So(report.Returned, ShouldEqual, 0)
			})
		})

		Convey("When more events pass than the result cap", func() {
			small := rank.New(rank.WithMaxResults(2))
			results := []model.ScrapingResult{envelope("instagram",
				candidate("1", "Student party one", "free student party with cheap drinks and games", "Rome", "instagram"),
				candidate("2", "Student party two", "free student party with cheap drinks and music", "Rome", "instagram"),
				candidate("3", "Student party three", "free student party with cheap drinks and dancing", "Rome", "instagram"),
			)}

			events, report, err := small.Rank(ctx, results, rank.Query{Text: "student party", Location: "rome"})

			Convey("Then the list is truncated to the cap", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 2)
				So(report.AfterFilter, ShouldEqual, 3)
				So(report.Returned, ShouldEqual, 2)
			})

			Convey("And a per-query cap overrides the default", func() {
				events, _, err := small.Rank(ctx, results, rank.Query{
					Text: "student party", Location: "rome", MaxResults: 1,
				})
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 1)
			})
		})

		Convey("When a type hint is supplied", func() {
			results := []model.ScrapingResult{envelope("reddit",
				candidate("1", "Student party downtown", "free student party with cheap drinks for everyone", "Lisbon", "reddit"),
			)}

			events, _, err := p.Rank(ctx, results, rank.Query{
				Text:     "student party",
				Location: "lisbon",
				TypeHint: model.CategoryNightlife,
			})

			Convey("Then the hint overrides keyword categorization", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 1)
				So(events[0].EventType, ShouldEqual, model.CategoryNightlife)
			})
		})

		Convey("When no hint is supplied", func() {
			results := []model.ScrapingResult{envelope("reddit",
				candidate("1", "Student party downtown", "free student party with cheap drinks for everyone", "Lisbon", "reddit"),
			)}

			events, _, err := p.Rank(ctx, results, rank.Query{Text: "student party", Location: "lisbon"})

			Convey("Then the ordered rules categorize the event", func() {
				So(err, ShouldBeNil)
				So(events[0].EventType, ShouldEqual, model.CategorySocial)
			})
		})

		Convey("When the student-only view is requested", func() {
			friendly := candidate("1", "Free student party", "free entry, cheap drinks, international students meet on campus", "Berlin", "reddit")
			plain := candidate("2", "Berlin techno showcase", "a long showcase of berlin techno artists with a full program", "Berlin", "reddit")

			Convey("And friendly events exist", func() {
				events, _, err := p.Rank(ctx,
					[]model.ScrapingResult{envelope("reddit", friendly, plain)},
					rank.Query{Text: "berlin student showcase party", Location: "berlin", StudentOnly: true},
				)

				Convey("Then only the friendly view is returned", func() {
					So(err, ShouldBeNil)
					So(events, ShouldHaveLength, 1)
					So(events[0].ID, ShouldEqual, "1")
				})
			})

			Convey("And no event clears the student threshold", func() {
				events, _, err := p.Rank(ctx,
					[]model.ScrapingResult{envelope("reddit", plain)},
					rank.Query{Text: "berlin techno showcase", Location: "berlin", StudentOnly: true},
				)

				Convey("Then the full list comes back instead of nothing", func() {
					So(err, ShouldBeNil)
					So(events, ShouldHaveLength, 1)
					So(events[0].ID, ShouldEqual, "2")
				})
			})
		})

		Convey("When the composite strategy is selected", func() {
			relevant := candidate("1", "Techno warehouse rave marathon", "the techno warehouse rave marathon returns with its full lineup program", "Hamburg", "reddit")
			balanced := candidate("2", "Techno warehouse student night", "cheap student tickets, free cloakroom, international crowd", "Hamburg", "reddit")

			results := []model.ScrapingResult{envelope("reddit", relevant, balanced)}
			q := rank.Query{Text: "techno warehouse rave marathon", Location: "hamburg"}

			byRelevance, _, err := p.Rank(ctx, results, q)
			So(err, ShouldBeNil)

			q.Strategy = rank.StrategyComposite
			byComposite, _, err := p.Rank(ctx, results, q)
			So(err, ShouldBeNil)

			Convey("Then the student-heavy event overtakes under composite", func() {
				So(byRelevance[0].ID, ShouldEqual, "1")
				So(byComposite[0].ID, ShouldEqual, "2")
			})
		})

		Convey("When an unknown strategy is requested", func() {
			_, _, err := p.Rank(ctx, nil, rank.Query{Text: "x", Strategy: "chaotic"})

			Convey("Then the call is rejected up front", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, rank.ErrUnknownStrategy), ShouldBeTrue)
			})
		})
	})
}

func TestParseStrategy(t *testing.T) {
	Convey("Given strategy names", t, func() {
		Convey("Then known names resolve and empty defaults to relevance", func() {
			s, err := rank.ParseStrategy("")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, rank.StrategyRelevance)

			s, err = rank.ParseStrategy("composite")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, rank.StrategyComposite)
		})

		Convey("Then unknown names error", func() {
			_, err := rank.ParseStrategy("bogus")
			So(errors.Is(err, rank.ErrUnknownStrategy), ShouldBeTrue)
		})
	})
}

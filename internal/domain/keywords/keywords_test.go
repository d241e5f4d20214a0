package keywords_test

import (
	"testing"

	"github.com/okian/scout/internal/domain/keywords"
	"github.com/okian/scout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExtract(t *testing.T) {
	Convey("Given the fixed keyword vocabulary", t, func() {
		Convey("When an event mentions several vocabulary terms", func() {
			ev := model.Candidate{
				Title:       "Student bar night",
				Description: "cheap drinks, free entry, student discount",
			}
			tags := keywords.Extract(ev)

			Convey("Then each present term emits its canonical tag once", func() {
				So(tags, ShouldContain, "bar")
				So(tags, ShouldContain, "drinking") // 'drink' canonicalizes
				So(tags, ShouldContain, "student")
				So(tags, ShouldHaveLength, 3)
			})
		})

		Convey("When activity words need canonicalization", func() {
			ev := model.Candidate{
				Title:       "Dance and eat your way through the city",
				Description: "sightseeing tour this weekend",
			}
			tags := keywords.Extract(ev)

			Convey("Then canonical forms come out, not the raw terms", func() {
				So(tags, ShouldContain, "dancing")
				So(tags, ShouldContain, "food")
				So(tags, ShouldContain, "sightseeing")
				So(tags, ShouldContain, "tour")
				So(tags, ShouldContain, "weekend")
			})
		})

		Convey("When a term appears in both title and description", func() {
			ev := model.Candidate{Title: "Party!", Description: "the biggest party of the year"}

			Convey("Then its tag is emitted once", func() {
				So(keywords.Extract(ev), ShouldResemble, []string{"party"})
			})
		})

		Convey("When no vocabulary term is present", func() {
			ev := model.Candidate{Title: "Silent reading hour"}

			Convey("Then no tags come out", func() {
				So(keywords.Extract(ev), ShouldBeEmpty)
			})
		})

		Convey("When audience and temporal words appear", func() {
			tags := keywords.FromText("international study abroad students meet tonight")

			Convey("Then their tags are extracted", func() {
				So(tags, ShouldContain, "student")
				So(tags, ShouldContain, "study abroad")
				So(tags, ShouldContain, "international")
				So(tags, ShouldContain, "tonight")
			})
		})
	})
}

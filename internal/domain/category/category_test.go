package category_test

import (
	"testing"

	"github.com/okian/scout/internal/domain/category"
	"github.com/okian/scout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCategorize(t *testing.T) {
	Convey("Given the ordered category rules", t, func() {
		Convey("When one keyword group matches", func() {
			cases := map[string]model.Category{
				"House party downtown":        model.CategorySocial,
				"Photography seminar":         model.CategoryAcademic,
				"Museum night":                model.CategoryCultural,
				"Morning fitness bootcamp":    model.CategorySports,
				"Best club in town":           model.CategoryNightlife,
				"Street food festival":        model.CategoryFood,
				"Piano concert":               model.CategoryEntertainment,
				"Hiking the north ridge":      model.CategoryOutdoor,
				"DIY bike repair":             model.CategoryWorkshop,
				"Young professional mixer":    model.CategoryNetworking,
				"Quiet reading circle":        model.CategoryGeneral,
			}

			Convey("Then each text resolves to its category", func() {
				for text, want := range cases {
					So(category.Categorize(model.Candidate{Title: text}), ShouldEqual, want)
				}
			})
		})

		Convey("When keywords from several rules appear", func() {
			ev := model.Candidate{
				Title:       "Hiking trip afterparty at the bar",
				Description: "hiking all day, bar all night",
			}

			Convey("Then the earliest rule wins, not the later one", func() {
				// social ("party" inside "afterparty") precedes both
				// nightlife ("bar") and outdoor ("hiking")
				So(category.Categorize(ev), ShouldEqual, model.CategorySocial)
			})
		})

		Convey("When an event mentions both hiking and bar only", func() {
			ev := model.Candidate{Title: "Post-hiking drinks at the bar"}

			Convey("Then nightlife beats outdoor by rule order", func() {
				So(category.Categorize(ev), ShouldEqual, model.CategoryNightlife)
			})
		})

		Convey("When an event says outdoor with no other keyword", func() {
			ev := model.Candidate{Title: "Great outdoor cinema"}

			Convey("Then the sports rule fires first, never the outdoor category", func() {
				// "outdoor" is a sports-rule keyword; the outdoor
				// category is keyed on hiking/park/nature only.
				So(category.Categorize(ev), ShouldEqual, model.CategorySports)
			})
		})

		Convey("When nothing matches", func() {
			So(category.Categorize(model.Candidate{}), ShouldEqual, model.CategoryGeneral)
		})

		Convey("When matching is case-insensitive via normalization", func() {
			ev := model.Candidate{Title: "NETWORKING BREAKFAST"}
			So(category.Categorize(ev), ShouldEqual, model.CategoryNetworking)
		})

		Convey("When classifying raw text directly", func() {
			So(category.FromText("best bars for students"), ShouldEqual, model.CategoryNightlife)
			So(category.FromText(""), ShouldEqual, model.CategoryGeneral)
		})
	})
}

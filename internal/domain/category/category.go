// Package category maps event text to one fixed category via ordered
// keyword rules.
package category

import (
	"strings"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/normalize"
)

// rule pairs a category with the keywords that select it.
type rule struct {
	category model.Category
	keywords []string
}

// rules is evaluated in order; the first match wins. The order is a
// deliberate tie-break policy: an event mentioning both "hiking" and
// "bar" is nightlife, never outdoor, because nightlife's rule comes
// first. Likewise "outdoor" alone lands on sports (rule 4), not the
// outdoor category (rule 8). Do not reorder.
var rules = []rule{
	{model.CategorySocial, []string{"party", "meetup", "social"}},
	{model.CategoryAcademic, []string{"workshop", "seminar", "lecture"}},
	{model.CategoryCultural, []string{"museum", "art", "culture"}},
	{model.CategorySports, []string{"sport", "fitness", "outdoor"}},
	{model.CategoryNightlife, []string{"bar", "club", "nightlife"}},
	{model.CategoryFood, []string{"food", "restaurant", "dining"}},
	{model.CategoryEntertainment, []string{"concert", "show", "performance"}},
	{model.CategoryOutdoor, []string{"hiking", "park", "nature"}},
	{model.CategoryWorkshop, []string{"skill", "diy", "hands-on"}},
	{model.CategoryNetworking, []string{"networking", "professional", "business"}},
}

// Categorize assigns the candidate's category from its normalized
// title and description. Returns CategoryGeneral when no rule fires.
func Categorize(ev model.Candidate) model.Category {
	return FromText(normalize.Text(ev.Title, ev.Description))
}

// FromText assigns a category from already-normalized free text.
func FromText(text string) model.Category {
	text = strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category
			}
		}
	}
	return model.CategoryGeneral
}

// Package classify defines the query-understanding capability and its
// deterministic keyword-rule fallback.
package classify

import (
	"context"
	"strings"

	"github.com/okian/scout/internal/domain/category"
	"github.com/okian/scout/internal/domain/keywords"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/normalize"
)

// Intent is the confidence-scored interpretation of a raw query.
type Intent struct {
	IsEventSearch  bool             `json:"is_event_search"`
	Location       string           `json:"location,omitempty"`
	EventTypes     []model.Category `json:"event_types,omitempty"`
	SearchKeywords []string         `json:"search_keywords,omitempty"`
	Confidence     float64          `json:"confidence"`
}

// Classifier interprets a raw query. Implementations may call external
// models; the pipeline must work with this capability entirely absent,
// erroring, or low-confidence, falling back to KeywordClassifier.
type Classifier interface {
	Classify(ctx context.Context, query string) (Intent, error)
}

// Default keyword classifier constants.
const (
	defaultMinTokenLength = 2

	confidenceCategoryMatch = 0.9
	confidenceKeywordMatch  = 0.6
	confidenceTokensOnly    = 0.3
)

// KeywordClassifier is the deterministic fallback built on the domain
// rule tables. It never errors.
type KeywordClassifier struct {
	minTokenLength int
}

// NewKeywordClassifier creates the rule-based classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{minTokenLength: defaultMinTokenLength}
}

// Classify derives intent from the query text alone: search keywords
// from qualifying tokens, an event type from the ordered category
// rules, and a location from a trailing "in <place>" clause.
func (c *KeywordClassifier) Classify(_ context.Context, query string) (Intent, error) {
	intent := Intent{
		SearchKeywords: normalize.Tokens(query, c.minTokenLength),
		Location:       locationFromQuery(query),
	}

	cat := category.FromText(query)
	tags := keywords.FromText(strings.ToLower(query))

	switch {
	case cat != model.CategoryGeneral:
		intent.EventTypes = []model.Category{cat}
		intent.IsEventSearch = true
		intent.Confidence = confidenceCategoryMatch
	case len(tags) > 0:
		intent.IsEventSearch = true
		intent.Confidence = confidenceKeywordMatch
	default:
		intent.IsEventSearch = len(intent.SearchKeywords) > 0
		intent.Confidence = confidenceTokensOnly
	}
	return intent, nil
}

// locationFromQuery pulls a location out of a trailing "in <place>"
// clause, e.g. "best bars in barcelona" -> "barcelona". Returns ""
// when the query has no such clause.
func locationFromQuery(query string) string {
	lower := strings.ToLower(strings.TrimSpace(query))
	idx := strings.LastIndex(lower, " in ")
	if idx < 0 {
		return ""
	}
	loc := strings.TrimSpace(lower[idx+len(" in "):])
	if loc == "" {
		return ""
	}
	return loc
}

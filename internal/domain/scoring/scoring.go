// Package scoring computes relevance, student-friendliness, and
// composite-quality scores for event candidates.
package scoring

import (
	"strings"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/normalize"
)

// Default scoring configuration constants.
const (
	defaultTokenOverlapWeight = 0.4
	defaultLocationWeight     = 0.3
	defaultTypeMatchWeight    = 0.2
	defaultMinTokenLength     = 2
	longDescriptionLength     = 50

	descriptionBonus = 0.1
	imageBonus       = 0.05
	dateTimeBonus    = 0.05

	// StudentFriendlyThreshold derives IsStudentFriendly from the
	// student-friendliness score. The flag is always this threshold
	// function of the score, never set independently.
	StudentFriendlyThreshold = 0.6
)

// studentSignal is one additive keyword signal for student-friendliness.
// Terms within a signal are alternatives; each signal fires at most once.
type studentSignal struct {
	terms  []string
	weight float64
}

// Student-friendliness signals. Matches are independent; the sum is
// clamped to 1.0.
var studentSignals = []studentSignal{
	{terms: []string{"student"}, weight: 0.3},
	{terms: []string{"study abroad"}, weight: 0.3},
	{terms: []string{"international"}, weight: 0.2},
	{terms: []string{"university", "college"}, weight: 0.2},
	{terms: []string{"campus"}, weight: 0.2},
	{terms: []string{"18+", "21+"}, weight: 0.1},
	{terms: []string{"all ages", "family"}, weight: 0.1},
	{terms: []string{"free", "no cost"}, weight: 0.2},
	{terms: []string{"cheap", "affordable"}, weight: 0.1},
	{terms: []string{"budget"}, weight: 0.1},
	{terms: []string{"meet", "social"}, weight: 0.1},
	{terms: []string{"networking"}, weight: 0.1},
	{terms: []string{"party", "celebration"}, weight: 0.1},
}

// Quality point values. Quality is an integer sum used purely for
// relative ordering on paths with no query context; only the sort order
// matters, so it is deliberately not normalized to [0,1].
const (
	qualityTitlePoints       = 10
	qualityLocationPoints    = 8
	qualityDateTimePoints    = 7
	qualityDescriptionPoints = 5
	qualityImagePoints       = 3
	qualityOrganizerPoints   = 2
	qualityTagsPoints        = 2
	qualityPricePoints       = 1

	qualityStudentBonus       = 5
	qualityStudyAbroadBonus   = 5
	qualityInternationalBonus = 3
)

// Engine computes candidate scores. The zero-value weights come from
// New; weights deliberately do not sum to 1.0, so sums can overshoot
// before the final clamp (a ceiling, not a probability).
type Engine struct {
	tokenOverlapWeight float64
	locationWeight     float64
	typeMatchWeight    float64
	minTokenLength     int
}

// New creates a scoring engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		tokenOverlapWeight: defaultTokenOverlapWeight,
		locationWeight:     defaultLocationWeight,
		typeMatchWeight:    defaultTypeMatchWeight,
		minTokenLength:     defaultMinTokenLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Relevance scores how well a candidate matches the query, optional
// location, and optional event-type hint. The result is clamped to
// [0.0, 1.0].
func (e *Engine) Relevance(ev model.Candidate, query, location string, typeHint model.Category) float64 {
	text := normalize.Text(ev.Title, ev.Description)
	score := 0.0

	// Token overlap: fraction of qualifying query tokens present in
	// the normalized text. A query with zero qualifying tokens
	// contributes nothing (guards the divide by zero).
	tokens := normalize.Tokens(query, e.minTokenLength)
	if len(tokens) > 0 {
		matched := 0
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				matched++
			}
		}
		score += float64(matched) / float64(len(tokens)) * e.tokenOverlapWeight
	}

	if location != "" && ev.Location != "" &&
		strings.Contains(strings.ToLower(ev.Location), strings.ToLower(location)) {
		score += e.locationWeight
	}

	if typeHint != "" && model.Category(strings.ToLower(ev.EventType)) == typeHint {
		score += e.typeMatchWeight
	}

	if len(ev.Description) > longDescriptionLength {
		score += descriptionBonus
	}
	if ev.ImageURL != "" {
		score += imageBonus
	}
	if ev.DateTime != "" {
		score += dateTimeBonus
	}

	return clamp(score)
}

// StudentFriendliness scores suitability for the student audience from
// keyword presence alone. Each signal is independent and additive; the
// result is clamped to [0.0, 1.0].
func (e *Engine) StudentFriendliness(ev model.Candidate) float64 {
	text := normalize.Text(ev.Title, ev.Description)
	score := 0.0
	for _, sig := range studentSignals {
		for _, term := range sig.terms {
			if strings.Contains(text, term) {
				score += sig.weight
				break
			}
		}
	}
	return clamp(score)
}

// IsStudentFriendly applies the threshold function that derives the
// boolean flag from a student-friendliness score.
func IsStudentFriendly(score float64) bool {
	return score > StudentFriendlyThreshold
}

// Quality computes the completeness-based integer score used by paths
// with no query context (e.g. basic per-source ordering).
func (e *Engine) Quality(ev model.Candidate) int {
	points := 0
	if ev.Title != "" {
		points += qualityTitlePoints
	}
	if ev.Description != "" {
		points += qualityDescriptionPoints
	}
	if ev.Location != "" {
		points += qualityLocationPoints
	}
	if ev.DateTime != "" {
		points += qualityDateTimePoints
	}
	if ev.ImageURL != "" {
		points += qualityImagePoints
	}
	if ev.Organizer != "" {
		points += qualityOrganizerPoints
	}
	if ev.Price != "" {
		points += qualityPricePoints
	}
	if len(ev.Tags) > 0 {
		points += qualityTagsPoints
	}

	desc := strings.ToLower(ev.Description)
	if strings.Contains(desc, "student") {
		points += qualityStudentBonus
	}
	if strings.Contains(desc, "study abroad") {
		points += qualityStudyAbroadBonus
	}
	if strings.Contains(desc, "international") {
		points += qualityInternationalBonus
	}
	return points
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < 0.0 {
		return 0.0
	}
	return score
}

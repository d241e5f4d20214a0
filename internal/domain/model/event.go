// Package model contains domain models passed between layers.
package model

import "time"

// Category is the closed set of event types assigned by the categorizer.
type Category string

// All known categories. General is the fallback when no rule fires.
const (
	CategorySocial        Category = "social"
	CategoryAcademic      Category = "academic"
	CategoryCultural      Category = "cultural"
	CategorySports        Category = "sports"
	CategoryNightlife     Category = "nightlife"
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategoryOutdoor       Category = "outdoor"
	CategoryWorkshop      Category = "workshop"
	CategoryNetworking    Category = "networking"
	CategoryGeneral       Category = "general"
)

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{
		CategorySocial,
		CategoryAcademic,
		CategoryCultural,
		CategorySports,
		CategoryNightlife,
		CategoryFood,
		CategoryEntertainment,
		CategoryOutdoor,
		CategoryWorkshop,
		CategoryNetworking,
		CategoryGeneral,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory returns the category matching s, or CategoryGeneral when
// s names no known category.
func ParseCategory(s string) Category {
	c := Category(s)
	if c.Valid() {
		return c
	}
	return CategoryGeneral
}

// Candidate is an unscored event as produced by any source. Candidates
// are immutable once handed to the pipeline; scoring derives fresh
// ScoredEvent values instead of mutating in place.
type Candidate struct {
	// ID is unique within a source but may collide across sources.
	// Use NamespacedID for identity-sensitive operations.
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	Location       string         `json:"location,omitempty"`
	DateTime       string         `json:"date_time,omitempty"` // ISO-8601, optional
	Platform       string         `json:"platform"`
	SourceURL      string         `json:"source_url,omitempty"`
	ImageURL       string         `json:"image_url,omitempty"`
	Organizer      string         `json:"organizer,omitempty"`
	Price          string         `json:"price,omitempty"`
	AgeRestriction string         `json:"age_restriction,omitempty"`
	EventType      string         `json:"event_type,omitempty"` // upstream-supplied type label, may be empty
	Tags           []string       `json:"tags,omitempty"`
	Raw            map[string]any `json:"raw_data,omitempty"` // opaque passthrough
}

// NamespacedID returns "platform:id". Source-assigned IDs are not
// namespaced by platform, so the bare ID is unsafe as a cross-source key.
func (c Candidate) NamespacedID() string {
	return c.Platform + ":" + c.ID
}

// ScoredEvent is a Candidate augmented with pipeline-computed fields.
// Created once per surviving candidate; never mutated after creation.
type ScoredEvent struct {
	Candidate

	RelevanceScore           float64  `json:"relevance_score"`
	StudentFriendlinessScore float64  `json:"student_friendliness_score"`
	IsStudentFriendly        bool     `json:"is_student_friendly"`
	EventType                Category `json:"event_type"`
	Keywords                 []string `json:"keywords,omitempty"`
}

// ScrapingResult is the per-platform envelope produced by source
// collaborators. Success == false envelopes are inert: their events are
// never merged into ranking and their error is reported separately.
type ScrapingResult struct {
	Success   bool        `json:"success"`
	Events    []Candidate `json:"events"`
	Error     string      `json:"error,omitempty"`
	Platform  string      `json:"platform"`
	Query     string      `json:"query"`
	Location  string      `json:"location"`
	ScrapedAt time.Time   `json:"scraped_at"`
}

// GroupByPlatform partitions a flat candidate list by platform tag,
// preserving the insertion order of each platform's first appearance.
// Every group is wrapped in a Success == true envelope.
func GroupByPlatform(events []Candidate) []ScrapingResult {
	var order []string
	groups := make(map[string][]Candidate)

	for _, ev := range events {
		if _, seen := groups[ev.Platform]; !seen {
			order = append(order, ev.Platform)
		}
		groups[ev.Platform] = append(groups[ev.Platform], ev)
	}

	now := time.Now()
	results := make([]ScrapingResult, 0, len(order))
	for _, platform := range order {
		results = append(results, ScrapingResult{
			Success:   true,
			Events:    groups[platform],
			Platform:  platform,
			ScrapedAt: now,
		})
	}
	return results
}

// Package keywords extracts a bounded set of domain keywords from
// event text against a fixed vocabulary.
package keywords

import (
	"strings"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/normalize"
)

// mapping emits tag when term appears in the normalized text. Several
// terms may share a tag; output is deduplicated.
type mapping struct {
	term string
	tag  string
}

// vocabulary covers event types, activities, timing, and audience.
var vocabulary = []mapping{
	// event-type words
	{"party", "party"},
	{"concert", "concert"},
	{"workshop", "workshop"},
	{"meetup", "meetup"},
	{"bar", "bar"},
	{"club", "club"},
	{"restaurant", "restaurant"},
	// activity words, canonicalized
	{"dance", "dancing"},
	{"drink", "drinking"},
	{"eat", "food"},
	{"sightsee", "sightseeing"},
	{"tour", "tour"},
	// temporal words
	{"tonight", "tonight"},
	{"weekend", "weekend"},
	{"this week", "this week"},
	// audience words
	{"student", "student"},
	{"study abroad", "study abroad"},
	{"international", "international"},
}

// Extract returns the canonical tags whose terms appear in the
// candidate's normalized text. Output order follows the vocabulary and
// carries no significance; tags are deduplicated.
func Extract(ev model.Candidate) []string {
	return FromText(normalize.Text(ev.Title, ev.Description))
}

// FromText extracts canonical tags from already-normalized text.
func FromText(text string) []string {
	text = strings.ToLower(text)
	var tags []string
	seen := make(map[string]struct{}, len(vocabulary))
	for _, m := range vocabulary {
		if !strings.Contains(text, m.term) {
			continue
		}
		if _, dup := seen[m.tag]; dup {
			continue
		}
		seen[m.tag] = struct{}{}
		tags = append(tags, m.tag)
	}
	return tags
}

// Package normalize provides the text normalization shared by every
// matching stage so that keyword and fingerprint matching is
// case-insensitive and tolerant of missing fields.
package normalize

import (
	"strings"
	"unicode"
)

// Text concatenates title and description with a single space separator
// and lower-cases the result. Missing fields are treated as empty
// strings; the title always precedes the description.
func Text(title, description string) string {
	return strings.ToLower(title + " " + description)
}

// Letters lower-cases s and strips every non-letter rune. Used for
// dedupe fingerprints, where punctuation and spacing differences must
// not defeat duplicate detection.
func Letters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokens splits query text on whitespace and drops tokens of length
// minLen or shorter. The survivors drive token-overlap relevance.
func Tokens(query string, minLen int) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > minLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

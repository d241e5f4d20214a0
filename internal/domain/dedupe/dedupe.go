// Package dedupe collapses near-duplicate event candidates using a
// normalized title+location fingerprint.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/normalize"
)

// fingerprintSeparator joins the title and location halves so that
// ("ab", "c") and ("a", "bc") fingerprint differently.
const fingerprintSeparator = "|"

// Fingerprint returns the duplicate-detection key for a candidate:
// lower-cased, letters-only title and location joined by a separator.
// Platform and ID are intentionally ignored, so the same event scraped
// from two platforms collapses. Candidates with empty title and
// location all share one fingerprint; that over-aggressive collapse is
// the documented conservative behavior.
func Fingerprint(ev model.Candidate) string {
	return normalize.Letters(ev.Title) + fingerprintSeparator + normalize.Letters(ev.Location)
}

// Candidates removes duplicates from the slice, keeping the first
// occurrence of each fingerprint and preserving input order. The input
// is never mutated. Idempotent: deduping a deduped slice is a no-op.
func Candidates(events []model.Candidate) []model.Candidate {
	if len(events) == 0 {
		return nil
	}
	d := NewDeduper()
	kept := make([]model.Candidate, 0, len(events))
	for _, ev := range events {
		if d.SeenAndRecord(context.Background(), Fingerprint(ev)) {
			continue
		}
		kept = append(kept, ev)
	}
	return kept
}

// Deduper records seen fingerprints. Implementations are safe for
// concurrent use.
type Deduper interface {
	// SeenAndRecord atomically checks whether fp was seen and records
	// it if not. Returns true if fp was already seen.
	SeenAndRecord(ctx context.Context, fp string) bool

	Size() int64
}

// inMemoryDeduper implements Deduper with a two-generation map. In
// bounded mode the current generation is rotated out once it reaches
// maxSize, so at most 2*maxSize fingerprints are retained and lookups
// consult both generations. Unbounded mode (maxSize <= 0) never
// rotates.
type inMemoryDeduper struct {
	mu      sync.Mutex
	current map[string]struct{}
	prev    map[string]struct{}
	maxSize int
	size    atomic.Int64
}

// NewDeduper creates an in-memory deduper with configuration options.
// The default is unbounded, which suits per-invocation pipeline use;
// long-lived streaming callers should set a bound.
func NewDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	d.current = make(map[string]struct{})
	return d
}

// SeenAndRecord atomically checks whether fp was seen and records it
// if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, fp string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.current[fp]; ok {
		return true
	}
	if _, ok := d.prev[fp]; ok {
		return true
	}

	if d.maxSize > 0 && len(d.current) >= d.maxSize {
		d.size.Add(-int64(len(d.prev)))
		d.prev = d.current
		d.current = make(map[string]struct{}, d.maxSize)
	}
	d.current[fp] = struct{}{}
	d.size.Add(1)
	return false
}

// Size returns the number of fingerprints currently retained.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

// Package source defines the raw-event source capability and the
// in-repo implementations used for tests and demos. Real scraping
// clients live outside this module and only need to satisfy Source.
package source

import (
	"context"

	"github.com/okian/scout/internal/domain/model"
)

// Source produces candidate events for a query. Fetch returns an error
// only for transport-level failures; a healthy source with no matches
// returns an empty Success envelope.
type Source interface {
	// Name returns the platform tag stamped on produced candidates.
	Name() string

	// Fetch collects candidates for the query, honoring ctx for
	// cancellation and deadlines.
	Fetch(ctx context.Context, query, location string) (model.ScrapingResult, error)
}

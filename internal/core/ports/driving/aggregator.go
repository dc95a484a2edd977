package driving

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// Aggregator builds the unified result list for a query term.
type Aggregator interface {
	// Aggregate returns tab, bookmark and web search results for term,
	// in that order. Source failures yield no items rather than an error.
	Aggregate(ctx context.Context, term string) []domain.SearchResult
}

// Activator dispatches the action for a selected result.
type Activator interface {
	// Activate runs the platform action for result and closes the
	// surface when it succeeds.
	Activate(ctx context.Context, result domain.SearchResult) error
}

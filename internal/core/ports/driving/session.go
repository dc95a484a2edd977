package driving

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// Session is the interactive state of one switcher invocation.
type Session interface {
	// SetTerm records the raw input and schedules it for querying once
	// typing goes quiet.
	SetTerm(term string)

	// Term returns the raw input.
	Term() string

	// Debounced delivers terms after the quiet period. Only the newest
	// undelivered term is kept.
	Debounced() <-chan string

	// Begin issues a request for term, making earlier requests stale.
	Begin(term string) domain.QueryRequest

	// Run aggregates the results for a request.
	Run(ctx context.Context, req domain.QueryRequest) []domain.SearchResult

	// Complete applies results if req is still the latest request.
	Complete(req domain.QueryRequest, results []domain.SearchResult) bool

	// Selection returns the selection over the applied results.
	Selection() *domain.Selection

	// Close cancels any pending term.
	Close()
}

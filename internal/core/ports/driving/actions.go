package driving

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// ResultActionService provides secondary actions on results.
// This is used by TUI, CLI, and MCP adapters.
type ResultActionService interface {
	// CopyURL copies the result's navigable URL to the system clipboard.
	CopyURL(ctx context.Context, result *domain.SearchResult) error

	// ResolveURL returns the navigable URL for a result. For web search
	// results this is the engine's query URL.
	ResolveURL(ctx context.Context, result *domain.SearchResult) (string, error)
}

package driven

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// TabSource enumerates the browser's open tabs.
type TabSource interface {
	// ListTabs returns every open tab in browser order.
	ListTabs(ctx context.Context) ([]domain.Tab, error)
}

// BookmarkSource provides a bookmark tree.
type BookmarkSource interface {
	// Name identifies the source in logs, e.g. "chrome".
	Name() string

	// BookmarkTree returns the root nodes of the bookmark tree.
	BookmarkTree(ctx context.Context) ([]*domain.BookmarkNode, error)
}

// SearchEngineSource resolves web search engines.
type SearchEngineSource interface {
	// DefaultSearchEngine returns the engine used for the web search entry.
	DefaultSearchEngine(ctx context.Context) (domain.SearchEngine, error)

	// SearchEngines lists every known engine.
	SearchEngines(ctx context.Context) ([]domain.SearchEngine, error)
}

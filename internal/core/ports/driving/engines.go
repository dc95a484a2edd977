package driving

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// EngineService lists the configured web search engines.
type EngineService interface {
	// DefaultSearchEngine returns the engine used for the web search entry.
	DefaultSearchEngine(ctx context.Context) (domain.SearchEngine, error)

	// SearchEngines returns every known engine.
	SearchEngines(ctx context.Context) ([]domain.SearchEngine, error)
}

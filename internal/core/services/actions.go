package services

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides secondary actions on results.
type ResultActionService struct {
	engines   driven.SearchEngineSource
	clipboard func(text string) error
}

// NewResultActionService creates a new result action service.
// The engine source is optional (can be nil); web search results then
// resolve against the built-in default engine.
func NewResultActionService(engines driven.SearchEngineSource) *ResultActionService {
	return &ResultActionService{
		engines:   engines,
		clipboard: clipboard.WriteAll,
	}
}

// CopyURL copies the result's navigable URL to the system clipboard.
func (s *ResultActionService) CopyURL(ctx context.Context, result *domain.SearchResult) error {
	target, err := s.ResolveURL(ctx, result)
	if err != nil {
		return err
	}
	if err := s.clipboard(target); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// ResolveURL returns the navigable URL for a result.
func (s *ResultActionService) ResolveURL(ctx context.Context, result *domain.SearchResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result is nil: %w", domain.ErrInvalidInput)
	}

	switch result.Kind {
	case domain.KindTab, domain.KindBookmark:
		if result.URL == "" {
			return "", domain.ErrNoTarget
		}
		return result.URL, nil
	case domain.KindWebSearch:
		engine, err := s.engineFor(ctx, result.Engine)
		if err != nil {
			return "", err
		}
		return engine.QueryURL(result.Term), nil
	default:
		return "", domain.ErrUnsupportedKind
	}
}

// engineFor finds the engine by name, falling back to the default engine.
func (s *ResultActionService) engineFor(ctx context.Context, name string) (domain.SearchEngine, error) {
	if s.engines == nil {
		return fallbackEngine, nil
	}
	engines, err := s.engines.SearchEngines(ctx)
	if err != nil {
		return domain.SearchEngine{}, fmt.Errorf("list search engines: %w", err)
	}
	for _, e := range engines {
		if e.Name == name {
			return e, nil
		}
	}
	engine, err := s.engines.DefaultSearchEngine(ctx)
	if err != nil {
		return fallbackEngine, nil
	}
	return engine, nil
}

// fallbackEngine is used when no engine source is wired.
var fallbackEngine = domain.SearchEngine{
	Name:        domain.DefaultEngineName,
	URLTemplate: "https://www.google.com/search?q={searchTerms}",
	Default:     true,
}

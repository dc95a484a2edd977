package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// mockAggregator implements driving.Aggregator.
type mockAggregator struct {
	results []domain.SearchResult
	terms   []string
}

func (m *mockAggregator) Aggregate(_ context.Context, term string) []domain.SearchResult {
	m.terms = append(m.terms, term)
	if term == "" {
		return m.results
	}
	var out []domain.SearchResult
	for _, r := range m.results {
		if strings.Contains(strings.ToLower(r.Title), strings.ToLower(term)) {
			out = append(out, r)
		}
	}
	return append(out, domain.NewWebSearchResult("Google", term))
}

// mockActivator implements driving.Activator.
type mockActivator struct {
	activated []domain.SearchResult
	err       error
}

func (m *mockActivator) Activate(_ context.Context, result domain.SearchResult) error {
	if m.err != nil {
		return m.err
	}
	m.activated = append(m.activated, result)
	return nil
}

// mockEngines implements driving.EngineService.
type mockEngines struct {
	engines []domain.SearchEngine
	err     error
}

func (m *mockEngines) DefaultSearchEngine(_ context.Context) (domain.SearchEngine, error) {
	for _, e := range m.engines {
		if e.Default {
			return e, nil
		}
	}
	return domain.SearchEngine{}, domain.ErrNotFound
}

func (m *mockEngines) SearchEngines(_ context.Context) ([]domain.SearchEngine, error) {
	return m.engines, m.err
}

func testResults() []domain.SearchResult {
	return []domain.SearchResult{
		domain.NewTabResult(domain.Tab{ID: "t1", Title: "GitHub", URL: "https://github.com", IconURL: "https://github.com/favicon.ico"}),
		domain.NewTabResult(domain.Tab{ID: "t2", Title: "Go", URL: "https://go.dev"}),
		domain.NewBookmarkResult(&domain.BookmarkNode{ID: "b1", Title: "Go Packages", URL: "https://pkg.go.dev"}),
	}
}

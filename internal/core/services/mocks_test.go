package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// --- Mock implementations ---

// panicTabSource implements driven.TabSource and panics on use.
type panicTabSource struct{}

func (panicTabSource) ListTabs(context.Context) ([]domain.Tab, error) {
	panic("tab source exploded")
}

// slowTabSource blocks until release is closed.
type slowTabSource struct {
	tabs    []domain.Tab
	release chan struct{}
}

func (s *slowTabSource) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	select {
	case <-s.release:
		return s.tabs, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// mockEngineSource implements driven.SearchEngineSource.
type mockEngineSource struct {
	engines    []domain.SearchEngine
	defaultErr error
	listErr    error
}

func (m *mockEngineSource) DefaultSearchEngine(context.Context) (domain.SearchEngine, error) {
	if m.defaultErr != nil {
		return domain.SearchEngine{}, m.defaultErr
	}
	for _, e := range m.engines {
		if e.Default {
			return e, nil
		}
	}
	return domain.SearchEngine{}, domain.ErrNotFound
}

func (m *mockEngineSource) SearchEngines(context.Context) ([]domain.SearchEngine, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.engines, nil
}

// countingAggregator implements driving.Aggregator and records terms.
type countingAggregator struct {
	mu    sync.Mutex
	terms []string
}

func (a *countingAggregator) Aggregate(_ context.Context, term string) []domain.SearchResult {
	a.mu.Lock()
	a.terms = append(a.terms, term)
	a.mu.Unlock()
	if term == "" {
		return nil
	}
	return []domain.SearchResult{domain.NewWebSearchResult(domain.DefaultEngineName, term)}
}

func (a *countingAggregator) calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.terms...)
}

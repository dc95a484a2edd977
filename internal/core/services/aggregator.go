package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure AggregatorService implements the interface.
var _ driving.Aggregator = (*AggregatorService)(nil)

// AggregatorService merges tabs, bookmarks and a web search entry into
// one ordered result list.
type AggregatorService struct {
	tabs      driven.TabSource
	engines   driven.SearchEngineSource
	bookmarks []driven.BookmarkSource
}

// NewAggregatorService creates a new aggregator.
// The tab and engine sources are optional (can be nil). Bookmark sources
// are merged in the order given.
func NewAggregatorService(
	tabs driven.TabSource,
	engines driven.SearchEngineSource,
	bookmarks ...driven.BookmarkSource,
) *AggregatorService {
	return &AggregatorService{
		tabs:      tabs,
		engines:   engines,
		bookmarks: bookmarks,
	}
}

// Aggregate returns the result list for term.
//
// An empty term lists every tab and bookmark unfiltered. A non-empty term
// keeps items whose title or URL contains it (case-insensitive) and ends
// the list with exactly one web search entry for the literal term.
func (s *AggregatorService) Aggregate(ctx context.Context, term string) []domain.SearchResult {
	logger.Section("Aggregation")
	logger.Debug("Term: %q", term)

	var (
		tabs   []domain.Tab
		trees  = make([][]*domain.BookmarkNode, len(s.bookmarks))
		engine = domain.DefaultEngineName
		wg     sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		tabs = s.listTabs(ctx)
	}()

	for i, src := range s.bookmarks {
		wg.Add(1)
		go func(i int, src driven.BookmarkSource) {
			defer wg.Done()
			trees[i] = s.bookmarkTree(ctx, src)
		}(i, src)
	}

	if term != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine = s.engineName(ctx)
		}()
	}

	wg.Wait()

	needle := strings.ToLower(term)
	results := make([]domain.SearchResult, 0, len(tabs)+1)

	for _, tab := range tabs {
		if matches(tab.Title, tab.URL, needle) {
			results = append(results, domain.NewTabResult(tab))
		}
	}
	tabCount := len(results)

	for _, tree := range trees {
		for _, node := range domain.FlattenBookmarks(tree) {
			if matches(node.Title, node.URL, needle) {
				results = append(results, domain.NewBookmarkResult(node))
			}
		}
	}
	logger.Debug("Matched %d tabs, %d bookmarks", tabCount, len(results)-tabCount)

	if term != "" {
		results = append(results, domain.NewWebSearchResult(engine, term))
	}

	return results
}

func (s *AggregatorService) listTabs(ctx context.Context) []domain.Tab {
	if s.tabs == nil {
		return nil
	}
	var tabs []domain.Tab
	guard("tabs", func() error {
		var err error
		tabs, err = s.tabs.ListTabs(ctx)
		return err
	})
	logger.Debug("Tabs: %d", len(tabs))
	return tabs
}

func (s *AggregatorService) bookmarkTree(ctx context.Context, src driven.BookmarkSource) []*domain.BookmarkNode {
	var roots []*domain.BookmarkNode
	guard("bookmarks/"+src.Name(), func() error {
		var err error
		roots, err = src.BookmarkTree(ctx)
		return err
	})
	return roots
}

func (s *AggregatorService) engineName(ctx context.Context) string {
	if s.engines == nil {
		return domain.DefaultEngineName
	}
	var engine domain.SearchEngine
	ok := guard("search engine", func() error {
		var err error
		engine, err = s.engines.DefaultSearchEngine(ctx)
		return err
	})
	if !ok || engine.Name == "" {
		return domain.DefaultEngineName
	}
	return engine.Name
}

// guard runs fn and reports whether it succeeded. Errors and panics are
// logged and swallowed so one broken source cannot block the others.
func guard(name string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("%s source panicked: %v", name, r)
			ok = false
		}
	}()
	if err := fn(); err != nil {
		logger.Warn("%s source failed: %v", name, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err))
		return false
	}
	return true
}

// matches reports whether title or url contains needle, which must
// already be lower-cased. An empty needle matches everything.
func matches(title, url, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), needle) ||
		strings.Contains(strings.ToLower(url), needle)
}

// Package searchengine provides the web search engines known to quickswitch.
package searchengine

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure Registry implements the interfaces.
var (
	_ driven.SearchEngineSource = (*Registry)(nil)
	_ driving.EngineService     = (*Registry)(nil)
)

// Builtins returns the engines available without configuration.
func Builtins() []domain.SearchEngine {
	return []domain.SearchEngine{
		{Name: "Google", URLTemplate: "https://www.google.com/search?q={searchTerms}"},
		{Name: "DuckDuckGo", URLTemplate: "https://duckduckgo.com/?q=%s"},
		{Name: "Bing", URLTemplate: "https://www.bing.com/search?q=%s"},
		{Name: "Brave", URLTemplate: "https://search.brave.com/search?q=%s"},
		{Name: "Startpage", URLTemplate: "https://www.startpage.com/do/search?q=%s"},
	}
}

// Registry resolves engines from the built-in list plus an optional
// custom engine from settings.
type Registry struct {
	engines     []domain.SearchEngine
	defaultName string
}

// NewRegistry creates a registry from search settings.
func NewRegistry(settings domain.SearchSettings) *Registry {
	engines := Builtins()
	if settings.HasCustomEngine() {
		engines = append(engines, domain.SearchEngine{
			Name:        settings.CustomName,
			URLTemplate: settings.CustomURL,
		})
	}

	r := &Registry{
		engines:     engines,
		defaultName: settings.DefaultEngine,
	}
	if r.defaultName == "" {
		r.defaultName = domain.DefaultEngineName
	}
	return r
}

// Lookup finds an engine by name, ignoring case.
func (r *Registry) Lookup(name string) (domain.SearchEngine, error) {
	for _, e := range r.engines {
		if strings.EqualFold(e.Name, name) {
			e.Default = strings.EqualFold(e.Name, r.defaultName)
			return e, nil
		}
	}
	return domain.SearchEngine{}, fmt.Errorf("search engine %q: %w", name, domain.ErrNotFound)
}

// DefaultSearchEngine returns the configured default. An unknown name
// falls back to Google.
func (r *Registry) DefaultSearchEngine(_ context.Context) (domain.SearchEngine, error) {
	engine, err := r.Lookup(r.defaultName)
	if err == nil {
		return engine, nil
	}
	logger.Warn("Unknown default search engine %q, using %s", r.defaultName, domain.DefaultEngineName)
	engine, err = r.Lookup(domain.DefaultEngineName)
	if err != nil {
		return domain.SearchEngine{}, err
	}
	engine.Default = true
	return engine, nil
}

// SearchEngines lists every engine, marking the default.
func (r *Registry) SearchEngines(_ context.Context) ([]domain.SearchEngine, error) {
	result := make([]domain.SearchEngine, len(r.engines))
	for i, e := range r.engines {
		e.Default = strings.EqualFold(e.Name, r.defaultName)
		result[i] = e
	}
	return result, nil
}

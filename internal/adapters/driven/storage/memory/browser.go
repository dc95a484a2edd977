package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure Browser implements the interface.
var _ driven.Browser = (*Browser)(nil)

// Call records one browser operation.
type Call struct {
	// Op is "focus", "create" or "search".
	Op string

	// Arg is the tab ID, URL or search term.
	Arg string

	// Disposition is set for "search" calls.
	Disposition domain.Disposition
}

// Browser is an in-memory driven.Browser that records every call.
// When backed by a TabSource it also focuses and opens tabs there.
type Browser struct {
	mu      sync.Mutex
	tabs    *TabSource
	engines driven.SearchEngineSource
	calls   []Call
	err     error
}

// NewBrowser creates a recording browser. tabs and engines are
// optional (can be nil).
func NewBrowser(tabs *TabSource, engines driven.SearchEngineSource) *Browser {
	return &Browser{
		tabs:    tabs,
		engines: engines,
	}
}

// SetError makes every call fail with err. Pass nil to clear it.
func (b *Browser) SetError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = err
}

// Calls returns the recorded calls in order.
func (b *Browser) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make([]Call, len(b.calls))
	copy(result, b.calls)
	return result
}

// FocusTab records the call and focuses the tab in the backing source.
func (b *Browser) FocusTab(_ context.Context, tabID string) error {
	if err := b.record(Call{Op: "focus", Arg: tabID}); err != nil {
		return err
	}
	if b.tabs != nil {
		return b.tabs.Activate(tabID)
	}
	return nil
}

// CreateTab records the call and appends a tab to the backing source.
func (b *Browser) CreateTab(_ context.Context, url string) error {
	if err := b.record(Call{Op: "create", Arg: url}); err != nil {
		return err
	}
	if b.tabs != nil {
		id := b.tabs.Add(domain.Tab{Title: url, URL: url})
		return b.tabs.Activate(id)
	}
	return nil
}

// RunWebSearch records the call and opens the query URL of the default
// engine when an engine source is wired.
func (b *Browser) RunWebSearch(ctx context.Context, term string, disposition domain.Disposition) error {
	if err := b.record(Call{Op: "search", Arg: term, Disposition: disposition}); err != nil {
		return err
	}
	if b.tabs == nil || b.engines == nil {
		return nil
	}
	engine, err := b.engines.DefaultSearchEngine(ctx)
	if err != nil {
		return err
	}
	target := engine.QueryURL(term)
	id := b.tabs.Add(domain.Tab{Title: engine.Name + ": " + term, URL: target})
	return b.tabs.Activate(id)
}

func (b *Browser) record(call Call) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.calls = append(b.calls, call)
	return nil
}

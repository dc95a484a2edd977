package cdp

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/target"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure Browser implements the interface.
var _ driven.Browser = (*Browser)(nil)

// Browser performs activations through the DevTools target domain.
type Browser struct {
	api     TargetAPI
	engines driven.SearchEngineSource
}

// NewBrowser creates a browser over api. engines resolves the query URL
// for web searches.
func NewBrowser(api TargetAPI, engines driven.SearchEngineSource) *Browser {
	return &Browser{
		api:     api,
		engines: engines,
	}
}

// FocusTab brings the tab with the given ID to the front.
func (b *Browser) FocusTab(ctx context.Context, tabID string) error {
	logger.Debug("CDP: activate target %s", tabID)
	return b.api.Activate(ctx, target.ID(tabID))
}

// CreateTab opens url in a new foreground tab.
func (b *Browser) CreateTab(ctx context.Context, url string) error {
	logger.Debug("CDP: create target %s", url)
	_, err := b.api.Create(ctx, url, false)
	return err
}

// RunWebSearch opens the default engine's results for term.
func (b *Browser) RunWebSearch(ctx context.Context, term string, disposition domain.Disposition) error {
	engine, err := b.engines.DefaultSearchEngine(ctx)
	if err != nil {
		return fmt.Errorf("resolve search engine: %w", err)
	}
	url := engine.QueryURL(term)
	logger.Debug("CDP: web search via %s (%s)", engine.Name, disposition)

	switch disposition {
	case domain.DispositionNewWindow:
		_, err = b.api.Create(ctx, url, true)
	case domain.DispositionCurrentTab:
		err = b.navigateCurrent(ctx, url)
	default:
		_, err = b.api.Create(ctx, url, false)
	}
	return err
}

// navigateCurrent loads url in the first page target, which Chrome
// reports as the most recently used.
func (b *Browser) navigateCurrent(ctx context.Context, url string) error {
	infos, err := b.api.Targets(ctx)
	if err != nil {
		return err
	}
	for _, info := range infos {
		if info != nil && info.Type == pageType {
			return b.api.Navigate(ctx, info.TargetID, url)
		}
	}
	return ErrNoPageTarget
}

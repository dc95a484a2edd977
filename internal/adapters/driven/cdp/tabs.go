package cdp

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure TabSource implements the interface.
var _ driven.TabSource = (*TabSource)(nil)

// pageType is the target type of a regular tab.
const pageType = "page"

// TabSource lists the browser's page targets as tabs.
type TabSource struct {
	api TargetAPI
}

// NewTabSource creates a tab source over api.
func NewTabSource(api TargetAPI) *TabSource {
	return &TabSource{api: api}
}

// ListTabs returns page targets in the order the browser reports them.
// Favicons are not part of target info, so IconURL is left empty.
func (s *TabSource) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	infos, err := s.api.Targets(ctx)
	if err != nil {
		return nil, err
	}

	tabs := make([]domain.Tab, 0, len(infos))
	for _, info := range infos {
		if info == nil || info.Type != pageType {
			continue
		}
		tabs = append(tabs, domain.Tab{
			ID:    string(info.TargetID),
			Title: info.Title,
			URL:   info.URL,
		})
	}
	return tabs, nil
}

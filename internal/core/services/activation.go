package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure ActivationService implements the interface.
var _ driving.Activator = (*ActivationService)(nil)

// ActivationService dispatches a selected result to the browser.
type ActivationService struct {
	browser driven.Browser
	surface driven.Surface
}

// NewActivationService creates a new activation service.
// The surface is optional (can be nil) for headless callers.
func NewActivationService(browser driven.Browser, surface driven.Surface) *ActivationService {
	return &ActivationService{
		browser: browser,
		surface: surface,
	}
}

// Activate runs the action for result's kind. The surface is closed only
// after the browser call returns successfully; on failure it stays open
// and the error is returned.
//
// A tab result without an ID is ignored: no call is made and the
// surface stays open.
func (s *ActivationService) Activate(ctx context.Context, result domain.SearchResult) error {
	logger.Debug("Activate %s %q", result.Kind, result.Title)

	switch result.Kind {
	case domain.KindTab:
		if result.TabID == "" {
			logger.Warn("Tab %q has no ID, ignoring activation", result.Title)
			return nil
		}
		if err := s.browser.FocusTab(ctx, result.TabID); err != nil {
			return fmt.Errorf("activate tab: %w", err)
		}

	case domain.KindBookmark:
		target := result.URL
		if result.Bookmark != nil && result.Bookmark.URL != "" {
			target = result.Bookmark.URL
		}
		if target == "" {
			return fmt.Errorf("activate bookmark: %w", domain.ErrNoTarget)
		}
		if err := s.browser.CreateTab(ctx, target); err != nil {
			return fmt.Errorf("activate bookmark: %w", err)
		}

	case domain.KindWebSearch:
		if err := s.browser.RunWebSearch(ctx, result.Term, domain.DispositionNewTab); err != nil {
			return fmt.Errorf("activate web search: %w", err)
		}

	default:
		return fmt.Errorf("activate %q: %w", result.Kind, domain.ErrUnsupportedKind)
	}

	if s.surface != nil {
		s.surface.Close()
	}
	return nil
}

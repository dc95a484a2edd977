package driven

import (
	"context"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// Browser performs the platform side of an activation.
type Browser interface {
	// FocusTab brings the tab with the given ID to the front.
	FocusTab(ctx context.Context, tabID string) error

	// CreateTab opens url in a new tab.
	CreateTab(ctx context.Context, url string) error

	// RunWebSearch searches for term with the default engine.
	RunWebSearch(ctx context.Context, term string, disposition domain.Disposition) error
}

// Surface is the UI that hosts the switcher.
type Surface interface {
	// Close dismisses the surface. It is called only after a
	// successful activation.
	Close()
}

// SurfaceFunc adapts a function to Surface. A nil SurfaceFunc does nothing.
type SurfaceFunc func()

// Close calls f.
func (f SurfaceFunc) Close() {
	if f != nil {
		f()
	}
}

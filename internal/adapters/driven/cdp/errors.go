package cdp

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// CDP-specific errors.
var (
	// ErrNoPageTarget indicates there is no page to navigate in place.
	ErrNoPageTarget = errors.New("cdp: no page target")

	// ErrClosed indicates the client was used after Close.
	ErrClosed = errors.New("cdp: client closed")
)

// unavailable wraps a connection-level failure so callers can match
// domain.ErrBrowserUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("cdp: %s: %w: %w", op, domain.ErrBrowserUnavailable, err)
}

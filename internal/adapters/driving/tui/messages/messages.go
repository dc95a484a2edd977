// Package messages defines Bubbletea message types for the switcher.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// QueryDebounced is sent when typing has been quiet long enough for the
// term to be queried.
type QueryDebounced struct {
	Term string
}

// AggregationCompleted carries the results of one sequenced request.
type AggregationCompleted struct {
	Request domain.QueryRequest
	Results []domain.SearchResult
}

// ActivationFailed is sent when the platform rejected an activation.
// The surface stays open.
type ActivationFailed struct {
	Err error
}

// URLCopied is sent after a copy-URL action.
type URLCopied struct {
	URL string
	Err error
}

// StatusExpired clears a transient status message if it is still the
// one identified by ID.
type StatusExpired struct {
	ID int
}

// SurfaceClosed is sent once the surface has been closed.
type SurfaceClosed struct{}

// ErrorOccurred is sent when an error occurs.
type ErrorOccurred struct {
	Err error
}

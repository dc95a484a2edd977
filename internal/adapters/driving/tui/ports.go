// Package tui provides the interactive quick switcher.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Session holds the query, the sequenced requests and the selection.
	Session driving.Session

	// Activator dispatches the selected result. It must close Surface
	// after a successful activation.
	Activator driving.Activator

	// ResultAction provides copy-url. Optional.
	ResultAction driving.ResultActionService

	// Surface ends the program when closed.
	Surface *Surface
}

// NewPorts creates a new Ports aggregate.
func NewPorts(
	session driving.Session,
	activator driving.Activator,
	resultAction driving.ResultActionService,
	surface *Surface,
) *Ports {
	return &Ports{
		Session:      session,
		Activator:    activator,
		ResultAction: resultAction,
		Surface:      surface,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	if p.Activator == nil {
		return ErrMissingActivator
	}
	if p.Surface == nil {
		return ErrMissingSurface
	}
	return nil
}

package mcp

import (
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Aggregator builds result lists.
	Aggregator driving.Aggregator

	// Activator dispatches results. Without it the activate tool is not offered.
	Activator driving.Activator

	// Engines backs the engines resource. Optional.
	Engines driving.EngineService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Aggregator == nil {
		return ErrMissingAggregator
	}
	return nil
}

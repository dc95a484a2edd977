// Package mcp provides an MCP (Model Context Protocol) server adapter for quickswitch.
// It lets AI assistants list what the switcher would show for a term and
// activate one of those results in the user's browser.
package mcp

import "errors"

// ErrMissingAggregator is returned when the aggregator is not provided.
var ErrMissingAggregator = errors.New("mcp: aggregator is required")

// ErrIndexOutOfRange is returned when activate names a row that does not exist.
var ErrIndexOutOfRange = errors.New("mcp: result index out of range")

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// DefaultLimit caps the rows returned by the search tool.
const DefaultLimit = 20

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Term  string `json:"term" jsonschema:"text to match against tab and bookmark titles and URLs; empty lists everything"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []ResultOutput `json:"results"`
	Count   int            `json:"count"`
}

// ResultOutput is one row of the switcher list.
type ResultOutput struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

// ActivateInput is the input schema for the activate tool.
type ActivateInput struct {
	Term  string `json:"term" jsonschema:"the term the result list was produced for"`
	Index int    `json:"index" jsonschema:"zero-based row of the result to activate"`
}

// ActivateOutput is the output schema for the activate tool.
type ActivateOutput struct {
	Action string       `json:"action"`
	Result ResultOutput `json:"result"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "List open tabs, bookmarks and the web search entry matching a term, in switcher order",
	}, s.handleSearch)

	if s.ports.Activator == nil {
		return
	}
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "activate",
		Description: "Activate a result in the browser: focus the tab, open the bookmark or run the web search",
	}, s.handleActivate)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := domain.LimitResults(s.ports.Aggregator.Aggregate(ctx, input.Term), limit)

	output := SearchOutput{
		Results: make([]ResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = toOutput(i, &results[i])
	}

	return nil, output, nil
}

// handleActivate aggregates the term afresh and activates the row at index.
func (s *Server) handleActivate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ActivateInput,
) (*mcp.CallToolResult, ActivateOutput, error) {
	results := s.ports.Aggregator.Aggregate(ctx, input.Term)
	if input.Index < 0 || input.Index >= len(results) {
		return nil, ActivateOutput{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, input.Index, len(results))
	}

	result := results[input.Index]
	if err := s.ports.Activator.Activate(ctx, result); err != nil {
		return nil, ActivateOutput{}, err
	}

	return nil, ActivateOutput{
		Action: result.Kind.ActionText(),
		Result: toOutput(input.Index, &result),
	}, nil
}

func toOutput(index int, r *domain.SearchResult) ResultOutput {
	return ResultOutput{
		Index: index,
		Kind:  r.Kind.String(),
		Title: r.Title,
		URL:   r.URL,
		Icon:  r.IconURL,
	}
}

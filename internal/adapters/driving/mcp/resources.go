package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for quickswitch resources.
	uriScheme = "quickswitch://"

	resultsPrefix = uriScheme + "results/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "engines",
		Name:        "engines",
		Description: "Known web search engines and which one is the default",
		MIMEType:    "application/json",
	}, s.handleEnginesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: resultsPrefix + "{term}",
		Name:        "results",
		Description: "The switcher result list for a term",
		MIMEType:    "application/json",
	}, s.handleResultsResource)
}

// handleEnginesResource lists the configured search engines.
func (s *Server) handleEnginesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Engines == nil {
		return jsonContents(req.Params.URI, []struct{}{})
	}

	engines, err := s.ports.Engines.SearchEngines(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing engines: %w", err)
	}

	type engineInfo struct {
		Name     string `json:"name"`
		Template string `json:"template"`
		Default  bool   `json:"default"`
	}

	infos := make([]engineInfo, len(engines))
	for i, e := range engines {
		infos[i] = engineInfo{Name: e.Name, Template: e.URLTemplate, Default: e.Default}
	}
	return jsonContents(req.Params.URI, infos)
}

// handleResultsResource returns the result list for the term in the URI.
func (s *Server) handleResultsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	term, ok := extractTerm(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	results := s.ports.Aggregator.Aggregate(ctx, term)
	out := make([]ResultOutput, len(results))
	for i := range results {
		out[i] = toOutput(i, &results[i])
	}
	return jsonContents(req.Params.URI, out)
}

// extractTerm returns the unescaped term of a results URI.
func extractTerm(uri string) (string, bool) {
	if !strings.HasPrefix(uri, resultsPrefix) {
		return "", false
	}
	term, err := url.PathUnescape(strings.TrimPrefix(uri, resultsPrefix))
	if err != nil {
		return "", false
	}
	return term, true
}

func jsonContents(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

package domain

import (
	"net/url"
	"strings"
)

// DefaultEngineName is used when no default search engine can be found.
const DefaultEngineName = "Google"

// Disposition tells the browser where to show web search results.
type Disposition string

// Dispositions understood by browsers.
const (
	DispositionCurrentTab Disposition = "CURRENT_TAB"
	DispositionNewTab     Disposition = "NEW_TAB"
	DispositionNewWindow  Disposition = "NEW_WINDOW"
)

// SearchEngine is a web search provider.
type SearchEngine struct {
	// Name is the display name, e.g. "DuckDuckGo".
	Name string

	// URLTemplate is the query URL with %s or {searchTerms}
	// where the escaped term goes.
	URLTemplate string

	// Default marks the engine used for the web search entry.
	Default bool
}

// QueryURL returns the navigable URL that searches for term.
func (e SearchEngine) QueryURL(term string) string {
	escaped := url.QueryEscape(term)
	if strings.Contains(e.URLTemplate, "{searchTerms}") {
		return strings.ReplaceAll(e.URLTemplate, "{searchTerms}", escaped)
	}
	return strings.ReplaceAll(e.URLTemplate, "%s", escaped)
}

package domain

import "fmt"

// UntitledTitle is shown for items whose source gave no title.
const UntitledTitle = "Untitled"

// ResultKind discriminates the source a SearchResult came from.
type ResultKind string

// Result kinds. The set is closed.
const (
	// KindTab is an open browser tab.
	KindTab ResultKind = "tab"

	// KindBookmark is a saved bookmark.
	KindBookmark ResultKind = "bookmark"

	// KindWebSearch is the synthetic "search the web" entry.
	KindWebSearch ResultKind = "search"
)

// IsValid returns true if the kind is recognised.
func (k ResultKind) IsValid() bool {
	switch k {
	case KindTab, KindBookmark, KindWebSearch:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ResultKind) String() string {
	return string(k)
}

// ActionText returns the verb shown next to an active row of this kind.
func (k ResultKind) ActionText() string {
	switch k {
	case KindTab:
		return "Switch to tab"
	case KindBookmark:
		return "Open bookmark"
	case KindWebSearch:
		return "Search web"
	default:
		return "Open"
	}
}

// SearchResult is one row of the unified switcher list.
type SearchResult struct {
	// Kind tells which source produced the result and which of the
	// reference fields below is meaningful.
	Kind ResultKind `json:"kind"`

	// Title is the display title. Never empty.
	Title string `json:"title"`

	// URL is the display URL. For web search results it holds the
	// descriptor `<engine>: "<term>"` rather than a navigable URL.
	URL string `json:"url"`

	// IconURL is an optional icon hint. Empty means no icon was given.
	IconURL string `json:"icon_url,omitempty"`

	// TabID identifies the tab for KindTab. Empty if the source gave none.
	TabID string `json:"tab_id,omitempty"`

	// Bookmark references the bookmark node for KindBookmark.
	Bookmark *BookmarkNode `json:"-"`

	// Term is the literal query for KindWebSearch.
	Term string `json:"term,omitempty"`

	// Engine is the search engine name for KindWebSearch.
	Engine string `json:"engine,omitempty"`
}

// HasIcon returns true if the result carries an icon hint.
func (r *SearchResult) HasIcon() bool {
	return r.IconURL != ""
}

// NewTabResult normalises a tab into a result.
func NewTabResult(tab Tab) SearchResult {
	return SearchResult{
		Kind:    KindTab,
		Title:   titleOrUntitled(tab.Title),
		URL:     tab.URL,
		IconURL: tab.IconURL,
		TabID:   tab.ID,
	}
}

// NewBookmarkResult normalises a bookmark node into a result.
func NewBookmarkResult(node *BookmarkNode) SearchResult {
	return SearchResult{
		Kind:     KindBookmark,
		Title:    titleOrUntitled(node.Title),
		URL:      node.URL,
		Bookmark: node,
	}
}

// NewWebSearchResult builds the synthetic web search entry for a term.
func NewWebSearchResult(engine, term string) SearchResult {
	return SearchResult{
		Kind:   KindWebSearch,
		Title:  "Search for " + term,
		URL:    WebSearchDescriptor(engine, term),
		Term:   term,
		Engine: engine,
	}
}

// WebSearchDescriptor formats the display URL of a web search entry.
func WebSearchDescriptor(engine, term string) string {
	return fmt.Sprintf(`%s: "%s"`, engine, term)
}

// LimitResults caps results at limit rows. A trailing web search entry
// survives the cut and takes the last row. A limit of 0 or less keeps
// everything. The input slice is not modified.
func LimitResults(results []SearchResult, limit int) []SearchResult {
	if limit <= 0 || len(results) <= limit {
		return results
	}
	last := results[len(results)-1]
	if last.Kind != KindWebSearch {
		return results[:limit:limit]
	}
	out := make([]SearchResult, 0, limit)
	out = append(out, results[:limit-1]...)
	return append(out, last)
}

func titleOrUntitled(title string) string {
	if title == "" {
		return UntitledTitle
	}
	return title
}

// QueryRequest is one sequenced aggregation run.
type QueryRequest struct {
	// Seq orders requests. Only the latest one may apply its results.
	Seq uint64

	// Term is the query the request was issued for.
	Term string
}

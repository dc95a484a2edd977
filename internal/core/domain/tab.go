package domain

// Tab is an open browser tab as reported by a tab source.
// Title, URL and IconURL may be empty when the browser did not report them.
type Tab struct {
	ID      string
	Title   string
	URL     string
	IconURL string
}

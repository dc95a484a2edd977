package memory

import "github.com/custodia-labs/quickswitch/internal/core/domain"

// DemoTabs returns a fixed set of tabs for --demo mode.
func DemoTabs() []domain.Tab {
	return []domain.Tab{
		{ID: "demo-1", Title: "GitHub", URL: "https://github.com", IconURL: "https://github.com/favicon.ico"},
		{ID: "demo-2", Title: "The Go Programming Language", URL: "https://go.dev"},
		{ID: "demo-3", Title: "Bubble Tea", URL: "https://github.com/charmbracelet/bubbletea"},
		{ID: "demo-4", Title: "", URL: "about:blank"},
	}
}

// DemoBookmarks returns a small bookmark tree for --demo mode.
func DemoBookmarks() []*domain.BookmarkNode {
	return []*domain.BookmarkNode{
		{
			ID:    "1",
			Title: "Bookmarks bar",
			Children: []*domain.BookmarkNode{
				{ID: "2", Title: "Go Packages", URL: "https://pkg.go.dev"},
				{
					ID:    "3",
					Title: "Work",
					Children: []*domain.BookmarkNode{
						{ID: "4", Title: "Mail", URL: "https://mail.example.com"},
						{ID: "5", Title: "Calendar", URL: "https://calendar.example.com"},
					},
				},
			},
		},
		{
			ID:    "6",
			Title: "Other bookmarks",
			Children: []*domain.BookmarkNode{
				{ID: "7", Title: "Chrome DevTools Protocol", URL: "https://chromedevtools.github.io/devtools-protocol/"},
			},
		},
	}
}

package list

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

func testResults(n int) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, domain.NewTabResult(domain.Tab{
			ID:    fmt.Sprintf("%d", i),
			Title: fmt.Sprintf("Tab %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		}))
	}
	return results
}

func newList(t *testing.T, n, height int) (*ResultList, *domain.Selection) {
	t.Helper()
	sel := domain.NewSelection()
	r := NewResultList(nil, sel)
	sel.OnChange(r.ScrollTo)
	r.SetDimensions(100, height)
	sel.Replace(testResults(n))
	return r, sel
}

func TestNewResultList_Defaults(t *testing.T) {
	r := NewResultList(nil, nil)

	require.NotNil(t, r)
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, "No results", strings.TrimSpace(r.View()))
}

func TestResultList_ViewShowsKindsAndURLs(t *testing.T) {
	sel := domain.NewSelection()
	r := NewResultList(nil, sel)
	r.SetDimensions(120, 10)
	sel.Replace([]domain.SearchResult{
		domain.NewTabResult(domain.Tab{ID: "1", Title: "Inbox", URL: "https://mail.example.com"}),
		domain.NewBookmarkResult(&domain.BookmarkNode{ID: "b", Title: "Go", URL: "https://go.dev"}),
		domain.NewWebSearchResult("Google", "go"),
	})

	view := r.View()

	assert.Contains(t, view, "tab")
	assert.Contains(t, view, "bookmark")
	assert.Contains(t, view, "search")
	assert.Contains(t, view, "https://go.dev")
	assert.Contains(t, view, `Google: "go"`)
	assert.Contains(t, view, Glyph(domain.KindBookmark))
}

func TestResultList_ActionTextOnlyOnActiveRow(t *testing.T) {
	sel := domain.NewSelection()
	r := NewResultList(nil, sel)
	r.SetDimensions(120, 10)
	sel.Replace([]domain.SearchResult{
		domain.NewTabResult(domain.Tab{ID: "1", Title: "Inbox"}),
		domain.NewBookmarkResult(&domain.BookmarkNode{ID: "b", Title: "Go", URL: "https://go.dev"}),
	})

	view := r.View()
	assert.Contains(t, view, "Switch to tab")
	assert.NotContains(t, view, "Open bookmark")

	sel.Down()
	view = r.View()
	assert.NotContains(t, view, "Switch to tab")
	assert.Contains(t, view, "Open bookmark")
}

func TestResultList_ScrollsWithSelection(t *testing.T) {
	r, sel := newList(t, 10, 3)

	for i := 0; i < 4; i++ {
		sel.Down()
	}
	assert.Equal(t, 2, r.Offset())
	assert.Contains(t, r.View(), "Tab 4")
	assert.NotContains(t, r.View(), "Tab 1")

	// wrapping up from the top scrolls to the end
	sel.Replace(testResults(10))
	assert.Equal(t, 0, r.Offset())
	sel.Up()
	assert.Equal(t, 7, r.Offset())
	assert.Contains(t, r.View(), "Tab 9")
}

func TestResultList_IndexAt(t *testing.T) {
	r, sel := newList(t, 5, 3)

	idx, ok := r.IndexAt(1)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	sel.Up()
	idx, ok = r.IndexAt(0)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = r.IndexAt(3)
	assert.False(t, ok)
	_, ok = r.IndexAt(-1)
	assert.False(t, ok)
}

func TestResultList_IndexAtPastEnd(t *testing.T) {
	r, _ := newList(t, 2, 5)

	_, ok := r.IndexAt(2)
	assert.False(t, ok)
}

func TestResultList_SetDimensionsKeepsActiveVisible(t *testing.T) {
	r, sel := newList(t, 10, 10)
	sel.Select(8)

	r.SetDimensions(100, 3)

	assert.Equal(t, 6, r.Offset())
	assert.Equal(t, 3, r.Height())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hel…", truncate("hello", 4))
	assert.Equal(t, "…", truncate("hello", 1))
	assert.Equal(t, "", truncate("hello", 0))
	assert.Equal(t, "日本…", truncate("日本語です", 3))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "▣", Glyph(domain.KindTab))
	assert.Equal(t, "★", Glyph(domain.KindBookmark))
	assert.Equal(t, "⌕", Glyph(domain.KindWebSearch))
	assert.Equal(t, "•", Glyph(domain.ResultKind("x")))
}

func TestResultList_GlyphStyleFollowsIconHint(t *testing.T) {
	r := NewResultList(nil, domain.NewSelection())
	withIcon := domain.NewTabResult(domain.Tab{ID: "1", Title: "GitHub", IconURL: "https://github.com/favicon.ico"})
	without := domain.NewTabResult(domain.Tab{ID: "2", Title: "Go"})

	assert.Equal(t, r.styles.Marker(domain.KindTab), r.glyphStyle(&withIcon))
	assert.Equal(t, r.styles.Muted, r.glyphStyle(&without))
	assert.Contains(t, r.renderRow(&without, false), Glyph(domain.KindTab)+" tab")
}

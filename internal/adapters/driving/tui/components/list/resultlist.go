// Package list renders the switcher's result rows.
package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// Glyphs stand in for icons, which a terminal cannot draw.
var glyphs = map[domain.ResultKind]string{
	domain.KindTab:       "▣",
	domain.KindBookmark:  "★",
	domain.KindWebSearch: "⌕",
}

// Marker labels shown before each title.
var markers = map[domain.ResultKind]string{
	domain.KindTab:       "tab",
	domain.KindBookmark:  "bookmark",
	domain.KindWebSearch: "search",
}

const markerWidth = 8

// ResultList draws a window of rows over a selection. It owns no
// selection state of its own; it only scrolls to keep the active row
// visible.
type ResultList struct {
	selection *domain.Selection
	styles    *styles.Styles
	offset    int
	width     int
	height    int
}

// NewResultList creates a result list over sel.
func NewResultList(s *styles.Styles, sel *domain.Selection) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if sel == nil {
		sel = domain.NewSelection()
	}

	return &ResultList{
		selection: sel,
		styles:    s,
		width:     80,
		height:    10,
	}
}

// ScrollTo moves the window so that index is visible.
func (r *ResultList) ScrollTo(index int) {
	if index < r.offset {
		r.offset = index
	}
	if index >= r.offset+r.height {
		r.offset = index - r.height + 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

// Offset returns the index of the first visible row.
func (r *ResultList) Offset() int {
	return r.offset
}

// IndexAt maps a row of the rendered list to a result index.
func (r *ResultList) IndexAt(row int) (int, bool) {
	if row < 0 || row >= r.height {
		return 0, false
	}
	idx := r.offset + row
	if idx >= r.selection.Len() {
		return 0, false
	}
	return idx, true
}

// View renders the visible rows.
func (r *ResultList) View() string {
	results := r.selection.Results()
	if len(results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	active, _ := r.selection.Index()

	end := r.offset + r.height
	if end > len(results) {
		end = len(results)
	}

	lines := make([]string, 0, end-r.offset)
	for i := r.offset; i < end; i++ {
		lines = append(lines, r.renderRow(&results[i], i == active))
	}
	return strings.Join(lines, "\n")
}

func (r *ResultList) renderRow(result *domain.SearchResult, active bool) string {
	marker := r.styles.Marker(result.Kind)
	glyph := Glyph(result.Kind)
	label := markers[result.Kind]
	label += strings.Repeat(" ", markerWidth-len(label))

	action := ""
	if active {
		action = result.Kind.ActionText()
	}

	// indicator, glyph, spaces, marker, action gap
	fixed := 2 + 2 + markerWidth + 1
	room := r.width - fixed - len(action) - 2
	if room < 10 {
		room = 10
	}
	title := truncate(result.Title, room*2/3)
	url := truncate(result.URL, room-lipgloss.Width(title)-2)

	if active {
		left := r.styles.Active.Render("▌ ") +
			r.glyphStyle(result).Inherit(r.styles.Active).Render(glyph) +
			marker.Inherit(r.styles.Active).Render(" "+label) +
			r.styles.Active.Render(" "+title+"  ") +
			r.styles.Muted.Inherit(r.styles.Active).Render(url)
		pad := r.width - lipgloss.Width(left) - len(action) - 1
		if pad < 1 {
			pad = 1
		}
		return left + r.styles.Active.Render(strings.Repeat(" ", pad)) + r.styles.Action.Render(action+" ")
	}

	return "  " + r.glyphStyle(result).Render(glyph) + marker.Render(" "+label) + " " +
		r.styles.Normal.Render(title) + "  " + r.styles.Muted.Render(url)
}

// glyphStyle colours the glyph by kind when the source gave an icon for
// the row. Rows without one get a muted glyph.
func (r *ResultList) glyphStyle(result *domain.SearchResult) lipgloss.Style {
	if result.HasIcon() {
		return r.styles.Marker(result.Kind)
	}
	return r.styles.Muted
}

// Glyph returns the icon fallback for a kind.
func Glyph(k domain.ResultKind) string {
	if g, ok := glyphs[k]; ok {
		return g
	}
	return "•"
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// SetDimensions sets the width and the number of visible rows.
func (r *ResultList) SetDimensions(width, height int) {
	if height < 1 {
		height = 1
	}
	r.width = width
	r.height = height
	if idx, ok := r.selection.Index(); ok {
		r.ScrollTo(idx)
	}
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the number of visible rows.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return r.selection.Len()
}

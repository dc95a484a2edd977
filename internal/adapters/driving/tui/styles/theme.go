// Package styles provides colour themes and styling for the switcher.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// Theme defines the colour palette of the switcher.
type Theme struct {
	// Accent highlights the active row and the header.
	Accent lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for URLs and hints.
	Muted lipgloss.Color

	// Surface is the background of the active row and the status bar.
	Surface lipgloss.Color

	// Border is the input border colour.
	Border lipgloss.Color

	// Error indicates a failed activation.
	Error lipgloss.Color

	// Success indicates a completed action.
	Success lipgloss.Color

	// Tab, Bookmark and Search colour the kind markers.
	Tab      lipgloss.Color
	Bookmark lipgloss.Color
	Search   lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#89B4FA"), // Blue
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Surface:    lipgloss.Color("#313244"), // Raised gray
		Border:     lipgloss.Color("#45475A"), // Border gray
		Error:      lipgloss.Color("#F38BA8"), // Red
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Tab:        lipgloss.Color("#94E2D5"), // Teal
		Bookmark:   lipgloss.Color("#F9E2AF"), // Yellow
		Search:     lipgloss.Color("#CBA6F7"), // Mauve
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the header.
	Title lipgloss.Style

	// Normal style for row titles.
	Normal lipgloss.Style

	// Muted style for URLs and placeholders.
	Muted lipgloss.Style

	// Active style for the row under the selection.
	Active lipgloss.Style

	// Action style for the action text on the active row.
	Action lipgloss.Style

	// Error style for transient error messages.
	Error lipgloss.Style

	// Success style for transient confirmations.
	Success lipgloss.Style

	// InputField style for the query box.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Hint style for keybinding hints.
	Hint lipgloss.Style

	markers map[domain.ResultKind]lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Active: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Surface),

		Action: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Background(theme.Surface),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Hint: lipgloss.NewStyle().
			Foreground(theme.Muted),

		markers: map[domain.ResultKind]lipgloss.Style{
			domain.KindTab:       lipgloss.NewStyle().Foreground(theme.Tab),
			domain.KindBookmark:  lipgloss.NewStyle().Foreground(theme.Bookmark),
			domain.KindWebSearch: lipgloss.NewStyle().Foreground(theme.Search),
		},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Marker returns the style of the kind marker for k.
func (s *Styles) Marker(k domain.ResultKind) lipgloss.Style {
	if st, ok := s.markers[k]; ok {
		return st
	}
	return s.Muted
}

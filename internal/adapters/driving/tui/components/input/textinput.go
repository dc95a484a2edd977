// Package input provides the query box of the switcher.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the query box is empty.
const Placeholder = "Search tabs, bookmarks, history, downloads and more..."

// QueryInput wraps a bubbles textinput with switcher styling.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewQueryInput creates a focused query box.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return &QueryInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init starts the cursor blink.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the query box.
func (q *QueryInput) View() string {
	return q.styles.InputField.Width(q.width).Render(q.textinput.View())
}

// Value returns the current input value.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue sets the input value.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Focused returns whether the input is focused.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sets the outer width of the box.
func (q *QueryInput) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	q.width = width - 2
	// border, padding and prompt
	q.textinput.Width = width - 8
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}

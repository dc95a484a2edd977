// Package status provides the switcher's status bar.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
)

// State represents what the left side of the bar shows.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateResults State = "results"
	StateError   State = "error"
	StateNotice  State = "notice"
)

// Bar displays status and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	hints       []key.Binding
	state       State
	message     string
	messageID   int
	resultCount int
	width       int
}

// NewBar creates a status bar showing the short help of km.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		hints:  km.ShortHelp(),
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		return s.styles.Error.Render(s.message)
	case StateNotice:
		return s.styles.Success.Render(s.message)
	case StateResults:
		if s.resultCount == 1 {
			return s.styles.Normal.Render("1 result")
		}
		return s.styles.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
	case StateReady:
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return s.styles.Hint.Render(strings.Join(hints, " · "))
}

// SetResultCount shows the number of applied results.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
	if s.state != StateError && s.state != StateNotice {
		s.state = StateResults
	}
}

// ResultCount returns the current result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetLoading shows the loading indicator unless a message is on screen.
func (s *Bar) SetLoading() {
	if s.state != StateError && s.state != StateNotice {
		s.state = StateLoading
	}
}

// Flash shows a transient message and returns its id. Pass the id to
// Expire to clear it.
func (s *Bar) Flash(state State, message string) int {
	s.messageID++
	s.state = state
	s.message = message
	return s.messageID
}

// Expire clears the message identified by id if it is still showing.
// It reports whether the message was cleared.
func (s *Bar) Expire(id int) bool {
	if id != s.messageID || (s.state != StateError && s.state != StateNotice) {
		return false
	}
	s.message = ""
	s.state = StateResults
	return true
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Message returns the current transient message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

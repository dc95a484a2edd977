// Package switcher provides the quick switcher view: a query box over
// the unified result list.
package switcher

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// StatusTTL is how long a transient status message stays visible.
const StatusTTL = 3 * time.Second

// View is the switcher: query box, result list and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ResultList
	statusbar *status.Bar

	session   driving.Session
	activator driving.Activator
	actions   driving.ResultActionService
	ctx       context.Context

	width   int
	height  int
	listTop int
	ready   bool
}

// NewView creates a switcher view over session. actions may be nil, in
// which case copying is unavailable.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	session driving.Session,
	activator driving.Activator,
	actions driving.ResultActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewQueryInput(s),
		list:      list.NewResultList(s, session.Selection()),
		statusbar: status.NewBar(s, km),
		session:   session,
		activator: activator,
		actions:   actions,
		ctx:       context.Background(),
	}
	session.Selection().OnChange(v.list.ScrollTo)
	v.SetDimensions(80, 24)
	v.ready = false
	return v
}

// WithContext sets the context used for aggregation and activation.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the empty-term listing and starts listening for terms.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.query(""), v.waitForTerm())
}

// Update handles messages for the switcher.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case tea.MouseMsg:
		return v.handleMouseMsg(msg)

	case messages.QueryDebounced:
		return v, tea.Batch(v.query(msg.Term), v.waitForTerm())

	case messages.AggregationCompleted:
		if v.session.Complete(msg.Request, msg.Results) {
			v.statusbar.SetResultCount(len(msg.Results))
		}
		return v, nil

	case messages.ActivationFailed:
		return v, v.flash(status.StateError, msg.Err.Error())

	case messages.URLCopied:
		if msg.Err != nil {
			return v, v.flash(status.StateError, "copy url: "+msg.Err.Error())
		}
		return v, v.flash(status.StateNotice, "Copied "+msg.URL)

	case messages.ErrorOccurred:
		return v, v.flash(status.StateError, msg.Err.Error())

	case messages.StatusExpired:
		v.statusbar.Expire(msg.ID)
		if v.statusbar.State() == status.StateResults {
			v.statusbar.SetResultCount(v.session.Selection().Len())
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	sel := v.session.Selection()

	switch {
	case key.Matches(msg, v.keymap.Up):
		sel.Up()
		return v, nil
	case key.Matches(msg, v.keymap.Down):
		sel.Down()
		return v, nil
	case key.Matches(msg, v.keymap.Select):
		return v, v.activate()
	case key.Matches(msg, v.keymap.CopyURL):
		return v, v.copyURL()
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if after := v.input.Value(); after != before {
		v.session.SetTerm(after)
	}
	return v, cmd
}

// handleMouseMsg selects the row under the pointer; a left click also
// activates it.
func (v *View) handleMouseMsg(msg tea.MouseMsg) (*View, tea.Cmd) {
	sel := v.session.Selection()

	//nolint:exhaustive // only wheel and left button are used
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		sel.Up()
		return v, nil
	case tea.MouseButtonWheelDown:
		sel.Down()
		return v, nil
	}

	idx, ok := v.list.IndexAt(msg.Y - v.listTop)
	if !ok {
		return v, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		sel.Select(idx)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			sel.Select(idx)
			return v, v.activate()
		}
	case tea.MouseActionRelease:
	}
	return v, nil
}

// query issues a sequenced request for term.
func (v *View) query(term string) tea.Cmd {
	req := v.session.Begin(term)
	v.statusbar.SetLoading()
	ctx := v.ctx
	return func() tea.Msg {
		return messages.AggregationCompleted{Request: req, Results: v.session.Run(ctx, req)}
	}
}

// waitForTerm blocks until the session delivers the next debounced term.
func (v *View) waitForTerm() tea.Cmd {
	terms := v.session.Debounced()
	ctx := v.ctx
	return func() tea.Msg {
		select {
		case term := <-terms:
			return messages.QueryDebounced{Term: term}
		case <-ctx.Done():
			return nil
		}
	}
}

// activate dispatches the active result. On success the surface closes
// and the program exits; on failure the view stays open.
func (v *View) activate() tea.Cmd {
	result, ok := v.session.Selection().Active()
	if !ok {
		return nil
	}
	ctx := v.ctx
	return func() tea.Msg {
		if err := v.activator.Activate(ctx, result); err != nil {
			return messages.ActivationFailed{Err: err}
		}
		return nil
	}
}

func (v *View) copyURL() tea.Cmd {
	result, ok := v.session.Selection().Active()
	if !ok {
		return nil
	}
	if v.actions == nil {
		return v.flash(status.StateError, "copy url: not available")
	}
	ctx := v.ctx
	return func() tea.Msg {
		url, err := v.actions.ResolveURL(ctx, &result)
		if err != nil {
			return messages.URLCopied{Err: err}
		}
		if err := v.actions.CopyURL(ctx, &result); err != nil {
			return messages.URLCopied{Err: err}
		}
		return messages.URLCopied{URL: url}
	}
}

// flash shows a transient message and schedules its expiry.
func (v *View) flash(state status.State, text string) tea.Cmd {
	id := v.statusbar.Flash(state, text)
	return tea.Tick(StatusTTL, func(time.Time) tea.Msg {
		return messages.StatusExpired{ID: id}
	})
}

// View renders the switcher.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.header(),
		v.input.View(),
		v.list.View(),
		"",
		v.statusbar.View(),
	)
}

func (v *View) header() string {
	return v.styles.Title.Render("quickswitch")
}

// SetDimensions sets the view dimensions and lays out the components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.listTop = lipgloss.Height(v.header()) + lipgloss.Height(v.input.View())

	// blank line and status bar below the list
	v.list.SetDimensions(width, height-v.listTop-2)
}

// Term returns the raw query.
func (v *View) Term() string {
	return v.input.Value()
}

// SelectedIndex returns the active row, or -1 when the list is empty.
func (v *View) SelectedIndex() int {
	idx, ok := v.session.Selection().Index()
	if !ok {
		return -1
	}
	return idx
}

// StatusBar returns the status bar component.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// ListTop returns the screen row of the first result row.
func (v *View) ListTop() int {
	return v.listTop
}

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/views/switcher"
)

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports    *Ports
	ctx      context.Context
	keymap   *keymap.KeyMap
	switcher *switcher.View

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		keymap:   km,
		switcher: switcher.NewView(s, km, ports.Session, ports.Activator, ports.ResultAction),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.switcher.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("quickswitch"),
		a.switcher.Init(),
		a.waitForClose(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.switcher.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keymap.Quit) {
			a.ports.Session.Close()
			return a, tea.Quit
		}

	case messages.SurfaceClosed:
		a.ports.Session.Close()
		return a, tea.Quit
	}

	a.switcher, cmd = a.switcher.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.switcher.View()
}

// waitForClose turns the surface closing into a message.
func (a *App) waitForClose() tea.Cmd {
	done := a.ports.Surface.Done()
	ctx := a.ctx
	return func() tea.Msg {
		select {
		case <-done:
			return messages.SurfaceClosed{}
		case <-ctx.Done():
			return nil
		}
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(a.ctx),
	)
	_, err := p.Run()
	return err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// Switcher returns the switcher view.
func (a *App) Switcher() *switcher.View {
	return a.switcher
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.switcher.SetDimensions(width, height)
}

// Package keymap defines keybindings for the switcher.
package keymap

import (
	"runtime"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the switcher.
type KeyMap struct {
	// Up moves the selection to the previous row.
	Up key.Binding

	// Down moves the selection to the next row.
	Down key.Binding

	// Select activates the selected row.
	Select key.Binding

	// CopyURL copies the URL of the selected row.
	CopyURL key.Binding

	// Quit closes the switcher without activating anything.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select item"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy url"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp returns the hints shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, OpenExtension(runtime.GOOS)}
}

// FullHelp returns every keybinding grouped by purpose.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.CopyURL, k.Quit},
	}
}

// OpenExtension returns the display-only hint for the global shortcut
// that opens the switcher. macOS uses CMD, other platforms CTRL.
func OpenExtension(goos string) key.Binding {
	modifier := "CTRL"
	if goos == "darwin" {
		modifier = "CMD"
	}
	return key.NewBinding(
		key.WithKeys(),
		key.WithHelp(modifier+" Shift 0", "open extension"),
	)
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keys the platform reserves. Every other key is
// forwarded to the game as typed input.
type KeyMap struct {
	Quit    key.Binding
	Restart key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Quit}}
}

// DefaultKeyMap returns the platform key bindings. Letter keys are never
// bound since they are game input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play again"),
			key.WithDisabled(),
		),
	}
}

// forGameOver returns a copy with the restart binding enabled or disabled.
func (k KeyMap) forGameOver(over bool) KeyMap {
	k.Restart.SetEnabled(over)
	return k
}

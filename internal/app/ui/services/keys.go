package services

import (
	"github.com/charmbracelet/bubbles/key"

	"opsdeck/internal/app/ui/components"
)

// KeyMap defines the key bindings for the services view
type KeyMap struct {
	components.KeyMap
	Toggle  key.Binding
	Logs    key.Binding
	EnvVars key.Binding
	Refresh key.Binding
}

// DefaultKeyMap returns the default key bindings for the services view
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	return KeyMap{
		KeyMap: base,
		Toggle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start/stop"),
		),
		Logs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "logs"),
		),
		EnvVars: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "env vars"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// ShortHelp returns keybindings for the services view mini help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Logs, k.EnvVars, k.Refresh, k.Back, k.Quit}
}

// FullHelp returns keybindings for the services view expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Logs, k.EnvVars, k.Refresh, k.Back, k.Quit},
	}
}

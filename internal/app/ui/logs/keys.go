package logs

import (
	"github.com/charmbracelet/bubbles/key"

	"opsdeck/internal/app/ui/components"
)

// KeyMap defines the key bindings for the logs view
type KeyMap struct {
	components.KeyMap
	Older   key.Binding
	Newer   key.Binding
	Filter  key.Binding
	Source  key.Binding
	Kind    key.Binding
	Refresh key.Binding
}

// DefaultKeyMap returns the default key bindings for the logs view
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "scroll up")
	base.Down.SetHelp("↓/j", "scroll down")

	return KeyMap{
		KeyMap: base,
		Older: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "older"),
		),
		Newer: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "newer"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Source: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "source"),
		),
		Kind: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "runtime/http"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// ShortHelp returns keybindings for the logs view mini help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Older, k.Newer, k.Filter, k.Source, k.Kind, k.Refresh, k.Back, k.Quit}
}

// FullHelp returns keybindings for the logs view expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Older, k.Newer, k.Filter, k.Source, k.Kind, k.Refresh, k.Back, k.Quit},
	}
}

package app

import (
	"github.com/charmbracelet/bubbles/key"

	"vselect/internal/ui/input"
)

// KeyMap adds the host bindings to the widget bindings
type KeyMap struct {
	Widget input.KeyMap
	Help   key.Binding
	Quit   key.Binding
	Abort  key.Binding
}

// DefaultKeyMap returns the default host key bindings
func DefaultKeyMap(widget input.KeyMap) KeyMap {
	return KeyMap{
		Widget: widget,
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// ShortHelp returns bindings for the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return append(k.Widget.ShortHelp(), k.Help, k.Quit)
}

// FullHelp returns bindings for the help pager
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.Widget.FullHelp(), []key.Binding{k.Help, k.Quit, k.Abort})
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker keybindings.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	DragLeft  key.Binding
	DragRight key.Binding
	Choose    key.Binding
	Quit      key.Binding
	Help      key.Binding

	// Demo controls. Disabled unless the model runs as the demo.
	PaddingUp      key.Binding
	PaddingDown    key.Binding
	ToggleShowAll  key.Binding
	ToggleTracking key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last"),
		),
		DragLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "drag left"),
		),
		DragRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "drag right"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		PaddingUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more padding"),
		),
		PaddingDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "less padding"),
		),
		ToggleShowAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show all"),
		),
		ToggleTracking: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "track scroll"),
		),
	}
}

// setDemo enables or disables the demo controls.
func (k *KeyMap) setDemo(enabled bool) {
	k.PaddingUp.SetEnabled(enabled)
	k.PaddingDown.SetEnabled(enabled)
	k.ToggleShowAll.SetEnabled(enabled)
	k.ToggleTracking.SetEnabled(enabled)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Choose, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.DragLeft, k.DragRight, k.Choose, k.Quit},
		{k.PaddingUp, k.PaddingDown, k.ToggleShowAll, k.ToggleTracking},
		{k.Help},
	}
}

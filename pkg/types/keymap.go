package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the terminal viewer.
// It lives in pkg/types so the model and the help view share one definition.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Navigation
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Actions
	Open   key.Binding // Open the detail overlay for the selected card
	Close  key.Binding // Close the detail overlay
	Search key.Binding // Focus the search input

	// Search input
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextPage: key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("p", "["), key.WithHelp("p", "previous page")),

		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Close:  key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc/x", "close")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.PrevPage, k.NextPage, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevPage, k.NextPage, k.Open, k.Close},
		{k.Search, k.Submit, k.Cancel},
		{k.Help, k.Quit},
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Home  key.Binding

	// Actions
	Quit     key.Binding
	Escape   key.Binding
	Search   key.Binding
	Filter   key.Binding
	Favorite key.Binding
	Buy      key.Binding
	Remove   key.Binding
	Complete key.Binding

	// View switching
	Favorites key.Binding
	Orders    key.Binding
	SignIn    key.Binding
	Register  key.Binding
	SignOut   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Home: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "browse"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle favorite"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete order"),
		),

		// View switching
		Favorites: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "favorites"),
		),
		Orders: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "orders"),
		),
		SignIn: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "sign in"),
		),
		Register: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "register"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "sign out"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

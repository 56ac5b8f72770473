package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings of the review widget.
type KeyMap struct {
	TogglePage key.Binding
	Quit       key.Binding

	// Rating page.
	Stars  key.Binding
	Edit   key.Binding
	Done   key.Binding
	Submit key.Binding

	// Admin page.
	Up      key.Binding
	Down    key.Binding
	Approve key.Binding
	Reject  key.Binding
	Filter  key.Binding
}

var DefaultKeyMap = KeyMap{
	TogglePage: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "rating/admin"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Stars: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "stars"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "write review"),
	),
	Done: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "stop writing"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Approve: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "approve"),
	),
	Reject: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reject"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
}

// RatingHelp returns bindings shown on rating page.
func (k KeyMap) RatingHelp(editing bool) []key.Binding {
	if editing {
		return []key.Binding{k.Done, k.Submit, k.TogglePage}
	}
	return []key.Binding{k.Stars, k.Edit, k.Submit, k.TogglePage, k.Quit}
}

// AdminHelp returns bindings shown on admin page.
func (k KeyMap) AdminHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Approve, k.Reject, k.Filter, k.TogglePage, k.Quit}
}

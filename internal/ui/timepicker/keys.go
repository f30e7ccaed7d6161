package timepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's key bindings.
type KeyMap struct {
	// Closed dropdown
	Toggle key.Binding

	// Open dropdown
	Up         key.Binding
	Down       key.Binding
	NextColumn key.Binding
	PrevColumn key.Binding
	Select     key.Binding
	Close      key.Binding

	Clear key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next column"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous column"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u", "x"),
			key.WithHelp("x", "clear"),
		),
	}
}

// ShortHelp returns the bindings that apply while the dropdown is closed.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Clear}
}

// FullHelp returns every picker binding grouped by dropdown state.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Clear},
		{k.Up, k.Down, k.NextColumn, k.PrevColumn},
		{k.Select, k.Close},
	}
}

// OpenHelp returns the bindings that apply while the dropdown is open.
func (k KeyMap) OpenHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextColumn, k.Select, k.Close, k.Clear}
}

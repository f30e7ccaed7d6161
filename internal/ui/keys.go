package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/stigoleg/time-picker/internal/ui/timepicker"
)

// KeyMap defines the form-level key bindings. Picker bindings live in
// timepicker.KeyMap.
type KeyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	ToggleHelp key.Binding
	Confirm    key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Current.Muted
	h.Styles.ShortDesc = Current.Help
	return h
}

// spaceOpen replaces the picker's toggle in help once enter means confirm.
var spaceOpen = key.NewBinding(
	key.WithKeys(" "),
	key.WithHelp("space", "open"),
)

// contextKeyMap adapts bindings to the picker state for contextual help.
type contextKeyMap struct {
	keys      KeyMap
	picker    timepicker.KeyMap
	open      bool
	hasResult bool
}

// ForPicker returns a contextual key map implementing help.KeyMap.
func (k KeyMap) ForPicker(p timepicker.Model, hasResult bool) help.KeyMap {
	return contextKeyMap{keys: k, picker: p.KeyMap, open: p.IsOpen(), hasResult: hasResult}
}

// ShortHelp implements help.KeyMap for contextual help (compact).
func (c contextKeyMap) ShortHelp() []key.Binding {
	if c.open {
		return append(c.picker.OpenHelp(), c.keys.ForceQuit)
	}
	if !c.hasResult {
		return append(c.picker.ShortHelp(), c.keys.ToggleHelp, c.keys.Quit)
	}
	return []key.Binding{c.keys.Confirm, spaceOpen, c.picker.Clear, c.keys.ToggleHelp, c.keys.Quit}
}

// FullHelp implements help.KeyMap for contextual help (expanded).
func (c contextKeyMap) FullHelp() [][]key.Binding {
	groups := c.picker.FullHelp()
	if c.hasResult {
		groups[0] = []key.Binding{spaceOpen, c.picker.Clear}
	}
	return append(groups, []key.Binding{c.keys.Confirm, c.keys.ToggleHelp, c.keys.Quit, c.keys.ForceQuit})
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/time-picker/internal/ui/timepicker"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return updateKeys(msg, m)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case timepicker.ChangeMsg:
		if msg.ID != m.Picker.ID() {
			return m, nil
		}
		m.Result = msg.Time
		if msg.Time == nil {
			m.Picker.Value = ""
			m.log.Debug("time cleared")
		} else {
			m.Picker.Value = msg.Time.Format(m.Format)
			m.log.WithFields(map[string]any{"selected": m.Picker.Value}).Debug("time selected")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)
	return m, cmd
}

func updateKeys(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return quit(m, stateCancelled)
	case key.Matches(msg, m.keys.ToggleHelp):
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	if !m.Picker.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return quit(m, stateCancelled)
		case key.Matches(msg, m.keys.Confirm) && m.Result != nil:
			return quit(m, stateConfirmed)
		}
	}

	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)
	return m, cmd
}

func quit(m Model, s state) (Model, tea.Cmd) {
	m.State = s
	m.Picker.Unmount()
	m.log.WithFields(map[string]any{"state": s.String()}).Info("form closed")
	return m, tea.Quit
}

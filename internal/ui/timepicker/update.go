package timepicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update handles key and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.open {
			return m.updateOpen(msg)
		}
		return m.updateClosed(msg)
	}
	return m, nil
}

func (m Model) updateClosed(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Toggle):
		m.ToggleDropdown()
	case key.Matches(msg, m.KeyMap.Clear):
		return m, m.Clear()
	}
	return m, nil
}

func (m Model) updateOpen(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Close):
		m.Close()
	case key.Matches(msg, m.KeyMap.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.KeyMap.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.KeyMap.NextColumn):
		m.focusColumn(1)
	case key.Matches(msg, m.KeyMap.PrevColumn):
		m.focusColumn(-1)
	case key.Matches(msg, m.KeyMap.Select):
		c := m.column
		return m, m.selectIn(c, c.options()[m.cursor[c]])
	case key.Matches(msg, m.KeyMap.Clear):
		return m, m.Clear()
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	bounds := m.Bounds()
	if m.listener.PressedOutside(msg, bounds) {
		m.Close()
		return m, nil
	}
	if !bounds.Contains(msg.X, msg.Y) {
		return m, nil
	}

	x, y := msg.X-m.originX, msg.Y-m.originY
	ev := tea.MouseEvent(msg)
	if ev.IsWheel() {
		if c, _, ok := m.optionAt(x, y); ok {
			switch ev.Button {
			case tea.MouseButtonWheelUp:
				m.scroll(c, -1)
			case tea.MouseButtonWheelDown:
				m.scroll(c, 1)
			}
		}
		return m, nil
	}
	if !isPress(msg) {
		return m, nil
	}

	if y == 0 {
		return m.pressFieldRow(x)
	}
	if c, row, ok := m.optionAt(x, y); ok {
		m.column = c
		return m, m.selectIn(c, c.options()[row])
	}
	return m, nil
}

func (m Model) pressFieldRow(x int) (Model, tea.Cmd) {
	fw := m.fieldWidth()
	switch {
	case x <= fw:
		m.ToggleDropdown()
	case x == fw+1:
		ind := m.indicator()
		ind.Toggle = m.setOpen
		ind.Activate()
	case m.ClearIcon != "" && x >= m.clearIconX() && x < m.fieldRowWidth():
		return m, m.Clear()
	}
	return m, nil
}

// optionAt maps a cell relative to the picker origin onto an option row.
func (m Model) optionAt(x, y int) (column, int, bool) {
	if !m.open {
		return 0, 0, false
	}
	line := y - 2
	cx := x - 1
	if line < 0 || line >= m.rows() || cx < 0 || cx >= columnsWidth {
		return 0, 0, false
	}
	if cx%(cellWidth+columnGap) >= cellWidth {
		return 0, 0, false
	}
	c := column(cx / (cellWidth + columnGap))
	row := m.offset[c] + line
	if row >= len(c.options()) {
		return 0, 0, false
	}
	return c, row, true
}

func (m Model) clearIconX() int {
	return m.fieldWidth() + 1 + m.indicator().Width() + 1
}

func (m Model) fieldRowWidth() int {
	w := m.fieldWidth() + 1 + m.indicator().Width()
	if m.ClearIcon != "" {
		w += 1 + lipgloss.Width(m.ClearIcon)
	}
	return w
}

package timepicker

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/time-picker/internal/clock"
)

type column int

const (
	hourColumn column = iota
	minuteColumn
	periodColumn
	columnCount
)

func (c column) String() string {
	switch c {
	case hourColumn:
		return "hour"
	case minuteColumn:
		return "minute"
	case periodColumn:
		return "period"
	default:
		return "unknown"
	}
}

func (c column) options() []string {
	switch c {
	case hourColumn:
		return clock.HourOptions()
	case minuteColumn:
		return clock.MinuteOptions()
	default:
		return clock.PeriodOptions()
	}
}

func (m Model) selected(c column) string {
	switch c {
	case hourColumn:
		return m.selection.Hour
	case minuteColumn:
		return m.selection.Minute
	default:
		return string(m.selection.Period)
	}
}

func (m *Model) selectIn(c column, value string) tea.Cmd {
	switch c {
	case hourColumn:
		return m.SelectHour(value)
	case minuteColumn:
		return m.SelectMinute(value)
	default:
		return m.SelectPeriod(value)
	}
}

// syncCursors moves every column cursor onto its selected row.
func (m *Model) syncCursors() {
	for c := hourColumn; c < columnCount; c++ {
		m.syncCursor(c)
	}
}

func (m *Model) syncCursor(c column) {
	if i := slices.Index(c.options(), m.selected(c)); i >= 0 {
		m.cursor[c] = i
	}
	m.scrollToCursor(c)
}

func (m *Model) moveCursor(delta int) {
	c := m.column
	n := len(c.options())
	m.cursor[c] = min(max(m.cursor[c]+delta, 0), n-1)
	m.scrollToCursor(c)
}

func (m *Model) scroll(c column, delta int) {
	m.offset[c] += delta
	m.clampOffset(c)
}

// scrollToCursor keeps the cursor row inside the visible window.
func (m *Model) scrollToCursor(c column) {
	rows := m.rows()
	if m.cursor[c] < m.offset[c] {
		m.offset[c] = m.cursor[c]
	}
	if m.cursor[c] >= m.offset[c]+rows {
		m.offset[c] = m.cursor[c] - rows + 1
	}
	m.clampOffset(c)
}

func (m *Model) clampOffset(c column) {
	limit := max(len(c.options())-m.rows(), 0)
	m.offset[c] = min(max(m.offset[c], 0), limit)
}

func (m *Model) focusColumn(delta int) {
	m.column = column((int(m.column) + delta + int(columnCount)) % int(columnCount))
}

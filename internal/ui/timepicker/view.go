package timepicker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	cellWidth     = 4
	columnGap     = 1
	columnsWidth  = int(columnCount)*cellWidth + (int(columnCount)-1)*columnGap
	dropdownWidth = columnsWidth + 2
	cursorMark    = "›"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

// Styles holds the picker's lipgloss styles. None of them may add padding,
// margins or borders except Dropdown, which must keep a one-cell border.
type Styles struct {
	Field       lipgloss.Style
	Placeholder lipgloss.Style
	ClearIcon   lipgloss.Style
	Dropdown    lipgloss.Style
	Option      lipgloss.Style
	Selected    lipgloss.Style
	Cursor      lipgloss.Style
}

// DefaultStyles returns the default picker styles.
func DefaultStyles() Styles {
	return Styles{
		Field:       lipgloss.NewStyle().Underline(true),
		Placeholder: lipgloss.NewStyle().Foreground(subtle).Underline(true),
		ClearIcon:   lipgloss.NewStyle().Foreground(subtle),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight),
		Option:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(special),
		Cursor:   lipgloss.NewStyle().Foreground(highlight),
	}
}

// View renders the display row and, when open, the option columns.
func (m Model) View() string {
	row := m.fieldView()
	if !m.open {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, m.dropdownView())
}

func (m Model) fieldView() string {
	var b strings.Builder

	text, style := m.Value, m.Styles.Field
	if text == "" {
		text, style = m.Placeholder, m.Styles.Placeholder
	}
	b.WriteString(style.Render(fit(text, m.fieldWidth())))
	b.WriteString(" ")
	b.WriteString(m.indicator().View())

	if m.ClearIcon != "" {
		b.WriteString(" ")
		b.WriteString(m.Styles.ClearIcon.Render(m.ClearIcon))
	}
	return b.String()
}

func (m Model) dropdownView() string {
	lines := make([]string, 0, m.rows())
	for line := 0; line < m.rows(); line++ {
		cells := make([]string, 0, columnCount)
		for c := hourColumn; c < columnCount; c++ {
			cells = append(cells, m.cellView(c, m.offset[c]+line))
		}
		lines = append(lines, strings.Join(cells, strings.Repeat(" ", columnGap)))
	}
	return m.Styles.Dropdown.Render(strings.Join(lines, "\n"))
}

func (m Model) cellView(c column, row int) string {
	options := c.options()
	if row >= len(options) {
		return strings.Repeat(" ", cellWidth)
	}

	mark := " "
	if m.focused && c == m.column && row == m.cursor[c] {
		mark = m.Styles.Cursor.Render(cursorMark)
	}

	value := options[row]
	style := m.Styles.Option
	if value == m.selected(c) {
		style = m.Styles.Selected
	}
	return mark + style.Render(value) + " "
}

// fit truncates or pads s to exactly width terminal cells. Wide runes that
// would straddle the edge are dropped and the gap is padded.
func fit(s string, width int) string {
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

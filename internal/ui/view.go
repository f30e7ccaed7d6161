package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model to a string. The picker always
// starts at (pickerIndent, pickerRow) so its mouse bounds stay valid.
func View(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render(m.Title))
	b.WriteString("\n\n")
	b.WriteString(Current.Label.Render(m.Label))
	b.WriteString("\n")
	b.WriteString(indent(m.Picker.View(), pickerIndent))
	b.WriteString("\n\n")

	b.WriteString(resultView(m))
	b.WriteString("\n\n")

	m.help.ShowAll = m.ShowHelp
	b.WriteString(m.help.View(m.keys.ForPicker(m.Picker, m.Result != nil)))

	if m.version != "" {
		b.WriteString("\n" + Current.Muted.Render("v"+m.version))
	}
	return b.String()
}

func resultView(m Model) string {
	if m.Result == nil {
		return Current.Muted.Render("No time selected")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		Current.Label.Render("Selected: "),
		Current.Result.Render(m.Result.String()),
	)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

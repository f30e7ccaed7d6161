// Package toggle renders the open/closed arrow shown next to a dropdown field.
package toggle

import "github.com/charmbracelet/lipgloss"

const (
	closedGlyph = "▾"
	openGlyph   = "▴"
)

// Size is the display size category of the indicator.
type Size int

const (
	Default Size = iota
	Small
	Inherit
	Large
)

// ParseSize maps a size name to a Size. Unknown names fall back to Default.
func ParseSize(name string) Size {
	switch name {
	case "small":
		return Small
	case "inherit":
		return Inherit
	case "large":
		return Large
	default:
		return Default
	}
}

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Inherit:
		return "inherit"
	case Large:
		return "large"
	default:
		return "default"
	}
}

// FontSize returns the point size the category stands for.
func (s Size) FontSize() string {
	switch s {
	case Small:
		return "12px"
	case Large:
		return "20px"
	case Inherit:
		return "inherit"
	default:
		return "16px"
	}
}

// Indicator is stateless: it shows Toggled and reports activations through
// Toggle with the negated flag.
type Indicator struct {
	Toggled bool
	Toggle  func(next bool)
	Size    Size
}

// Activate calls Toggle(!Toggled) once.
func (i Indicator) Activate() {
	if i.Toggle != nil {
		i.Toggle(!i.Toggled)
	}
}

// View renders the glyph for the current state.
func (i Indicator) View() string {
	glyph := closedGlyph
	if i.Toggled {
		glyph = openGlyph
	}
	return styleFor(i.Size).Render(glyph)
}

// Width is the number of terminal cells View occupies.
func (i Indicator) Width() int {
	return lipgloss.Width(i.View())
}

func styleFor(s Size) lipgloss.Style {
	switch s {
	case Inherit:
		return lipgloss.NewStyle()
	case Small:
		return lipgloss.NewStyle().Faint(true)
	case Large:
		return lipgloss.NewStyle().Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})
	}
}

// Package ui provides the terminal form that hosts the time picker.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used by the form.
type Style struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Result lipgloss.Style
	Muted  lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	return Style{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Label: lipgloss.NewStyle(),

		Result: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Special),

		Muted: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Help: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Error: lipgloss.NewStyle().
			Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()

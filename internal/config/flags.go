package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/stigoleg/time-picker/internal/ui"
)

// BindFlags registers the picker flags on fs, writing into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Form title")
	fs.StringVar(&cfg.Label, "label", cfg.Label, "Field label")
	fs.StringVarP(&cfg.Placeholder, "placeholder", "p", cfg.Placeholder, "Text shown while no time is displayed")
	fs.StringVar(&cfg.Value, "value", cfg.Value, "Initial display text")
	fs.StringVar(&cfg.ClearIcon, "clear-icon", cfg.ClearIcon, "Enable clearing and show this icon (e.g. \"×\")")
	fs.StringVar(&cfg.IconSize, "icon-size", cfg.IconSize, "Dropdown arrow size: small, inherit, default or large")
	fs.StringVarP(&cfg.Format, "format", "f", cfg.Format, "Go time layout used to print the result (e.g. \"15:04\")")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Width of the display field")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "Visible rows per dropdown column")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
}

// Resolve merges the optional YAML file at path with flagged, letting flags
// that were set explicitly on fs win, and validates the result.
func Resolve(fs *pflag.FlagSet, flagged Config, path string) (Config, error) {
	cfg := flagged
	if path != "" {
		fileCfg, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
		fs.Visit(func(f *pflag.Flag) {
			override(&cfg, flagged, f.Name)
		})
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func override(cfg *Config, flagged Config, name string) {
	switch name {
	case "title":
		cfg.Title = flagged.Title
	case "label":
		cfg.Label = flagged.Label
	case "placeholder":
		cfg.Placeholder = flagged.Placeholder
	case "value":
		cfg.Value = flagged.Value
	case "clear-icon":
		cfg.ClearIcon = flagged.ClearIcon
	case "icon-size":
		cfg.IconSize = flagged.IconSize
	case "format":
		cfg.Format = flagged.Format
	case "width":
		cfg.Width = flagged.Width
	case "rows":
		cfg.Rows = flagged.Rows
	case "log-file":
		cfg.LogFile = flagged.LogFile
	case "log-level":
		cfg.LogLevel = flagged.LogLevel
	}
}

// Options converts the settings into form options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Title:       c.Title,
		Label:       c.Label,
		Placeholder: c.Placeholder,
		Value:       c.Value,
		ClearIcon:   c.ClearIcon,
		IconSize:    c.IconSize,
		Format:      c.Format,
		Width:       c.Width,
		Rows:        c.Rows,
	}
}

// FormatError renders err for the terminal. Configuration errors get a
// boxed header with the field details below it.
func FormatError(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "invalid configuration:") {
		parts := strings.SplitN(msg, "\n\n", 2)
		if len(parts) == 2 {
			errorBox := ui.Current.Help.
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#FF4040")).
				Padding(0, 1)

			header := lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF4040")).
				Render(parts[0])

			details := lipgloss.NewStyle().
				Foreground(lipgloss.Color("#999999")).
				Render(parts[1])

			return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
		}
	}
	return ui.Current.Error.Render(msg)
}

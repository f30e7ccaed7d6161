package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/time-picker/internal/clock"
	"github.com/stigoleg/time-picker/internal/logger"
	"github.com/stigoleg/time-picker/internal/ui/timepicker"
	"github.com/stigoleg/time-picker/internal/ui/toggle"
)

const (
	pickerIndent = 2
	pickerRow    = 3
)

// Options configures the form and the picker it hosts.
type Options struct {
	Title       string
	Label       string
	Placeholder string
	Value       string
	ClearIcon   string
	IconSize    string
	// Format is the Go time layout used to display a selected time.
	Format string
	Width  int
	Rows   int
}

// Model holds the current state of the form.
type Model struct {
	State    state
	Title    string
	Label    string
	Format   string
	Picker   timepicker.Model
	Result   *clock.TimeOfDay
	ShowHelp bool

	keys    KeyMap
	help    help.Model
	log     *logger.Logger
	version string
}

// InitialModel returns a form with a focused, mounted picker.
func InitialModel(opts Options, log *logger.Logger) Model {
	p := timepicker.New()
	if opts.Placeholder != "" {
		p.Placeholder = opts.Placeholder
	}
	p.Value = opts.Value
	p.ClearIcon = opts.ClearIcon
	p.IconSize = toggle.ParseSize(opts.IconSize)
	if opts.Width > 0 {
		p.Width = opts.Width
	}
	if opts.Rows > 0 {
		p.VisibleRows = opts.Rows
	}
	p.SetOrigin(pickerIndent, pickerRow)
	p.Focus()
	p.Mount()

	title := opts.Title
	if title == "" {
		title = "Pick a time"
	}
	label := opts.Label
	if label == "" {
		label = "Time"
	}

	format := opts.Format
	if format == "" {
		format = clock.Layout
	}

	return Model{
		State:  statePicking,
		Title:  title,
		Label:  label,
		Format: format,
		Picker: p,
		keys:   DefaultKeys(),
		help:   NewHelpModel(),
		log:    log,
	}
}

// SetVersion records the version shown in the footer.
func (m *Model) SetVersion(v string) {
	m.version = v
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.Picker.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// Confirmed reports whether the user accepted a time.
func (m Model) Confirmed() bool {
	return m.State == stateConfirmed && m.Result != nil
}

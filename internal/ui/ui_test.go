package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/time-picker/internal/clock"
	"github.com/stigoleg/time-picker/internal/logger"
	"github.com/stigoleg/time-picker/internal/ui/timepicker"
)

func newTestModel(t *testing.T, opts Options) (Model, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return InitialModel(opts, log), buf
}

// run feeds msg through Update and then every command it produces,
// stopping at tea.Quit.
func run(t *testing.T, m Model, msg tea.Msg) (Model, bool) {
	t.Helper()
	m, cmd := Update(msg, m)
	for cmd != nil {
		next := cmd()
		if _, ok := next.(tea.QuitMsg); ok {
			return m, true
		}
		m, cmd = Update(next, m)
	}
	return m, false
}

func TestInitialModel(t *testing.T) {
	m, _ := newTestModel(t, Options{IconSize: "large", Width: 12, Rows: 4})

	assert.Equal(t, statePicking, m.State)
	assert.Equal(t, "Pick a time", m.Title)
	assert.Nil(t, m.Result)
	assert.True(t, m.Picker.Focused())
	assert.True(t, m.Picker.Mounted())
	assert.Equal(t, 12, m.Picker.Width)
	assert.Equal(t, 4, m.Picker.VisibleRows)
	assert.Equal(t, timepicker.Rect{X: pickerIndent, Y: pickerRow, Width: 14, Height: 1}, m.Picker.Bounds())
}

func TestPickAndConfirm(t *testing.T) {
	m, logs := newTestModel(t, Options{})

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Picker.IsOpen())

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Result)
	assert.Equal(t, "11:00 AM", m.Result.String())
	assert.Equal(t, "11:00 AM", m.Picker.Value)

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "11:00 PM", m.Result.String())
	require.False(t, m.Picker.IsOpen())

	m, quit := run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, quit)
	assert.True(t, m.Confirmed())
	assert.False(t, m.Picker.Mounted())
	assert.Contains(t, logs.String(), "time selected")
}

func TestEnterWithoutResultOpensPicker(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, quit := run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, quit)
	assert.True(t, m.Picker.IsOpen())
}

func TestEscClosesPickerBeforeQuitting(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.Picker.ToggleDropdown()

	m, quit := run(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, quit)
	assert.False(t, m.Picker.IsOpen())

	m, quit = run(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, quit)
	assert.False(t, m.Confirmed())
	assert.Equal(t, stateCancelled, m.State)
}

func TestClearResetsResult(t *testing.T) {
	m, _ := newTestModel(t, Options{ClearIcon: "×"})
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Result)

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Nil(t, m.Result)
	assert.Equal(t, "", m.Picker.Value)
	assert.Equal(t, clock.DefaultSelection(), m.Picker.Selection())
}

func TestIgnoresOtherPickers(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	tod := clock.MustParse("01:15 PM")

	m, _ = run(t, m, timepicker.ChangeMsg{ID: m.Picker.ID() + 1000, Time: &tod})

	assert.Nil(t, m.Result)
}

func TestMouseOutsideClosesPicker(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = run(t, m, tea.MouseMsg{X: pickerIndent, Y: pickerRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.Picker.IsOpen())

	m, _ = run(t, m, tea.MouseMsg{X: 70, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.Picker.IsOpen())
}

func TestViewPlacesPickerAtOrigin(t *testing.T) {
	m, _ := newTestModel(t, Options{Placeholder: "When?", Label: "Reminder"})

	lines := strings.Split(View(m), "\n")
	require.Greater(t, len(lines), pickerRow)
	assert.Contains(t, lines[2], "Reminder")
	assert.True(t, strings.HasPrefix(lines[pickerRow], strings.Repeat(" ", pickerIndent)+"When?"))
}

func TestResultView(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	assert.Contains(t, View(m), "No time selected")

	tod := clock.MustParse("07:45 PM")
	m.Result = &tod
	assert.Contains(t, View(m), "Selected: 07:45 PM")
}

func TestToggleHelp(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	short := View(m)

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.True(t, m.ShowHelp)

	assert.NotEqual(t, short, View(m))
	assert.Contains(t, View(m), "previous column")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Picking", statePicking.String())
	assert.Equal(t, "Confirmed", stateConfirmed.String())
	assert.Equal(t, "Unknown", state(42).String())
}

func TestSelectionIsLoggedAndDisplayedInFormat(t *testing.T) {
	m, logs := newTestModel(t, Options{Format: "15:04"})
	assert.Equal(t, "15:04", m.Format)

	tod := clock.MustParse("07:45 PM")
	m, _ = run(t, m, timepicker.ChangeMsg{ID: m.Picker.ID(), Time: &tod})

	assert.Equal(t, "19:45", m.Picker.Value)
	assert.Contains(t, logs.String(), `"selected":"19:45"`)
}

func TestDefaultFormatIsClockLayout(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	assert.Equal(t, clock.Layout, m.Format)
}

func helpKeys(bindings []key.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, b.Help().Key+" "+b.Help().Desc)
	}
	return out
}

func TestHelpWithResultOpensOnSpace(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	before := helpKeys(m.keys.ForPicker(m.Picker, false).ShortHelp())
	assert.Contains(t, before, "enter open")

	after := helpKeys(m.keys.ForPicker(m.Picker, true).ShortHelp())
	assert.Contains(t, after, "enter confirm")
	assert.Contains(t, after, "space open")
	assert.NotContains(t, after, "enter open")

	var full []string
	for _, group := range m.keys.ForPicker(m.Picker, true).FullHelp() {
		full = append(full, helpKeys(group)...)
	}
	assert.NotContains(t, full, "enter open")
	assert.Contains(t, full, "space open")
}

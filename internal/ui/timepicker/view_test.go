package timepicker

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewClosedShowsPlaceholder(t *testing.T) {
	m := New()
	view := m.View()

	assert.Contains(t, view, "Select time")
	assert.Contains(t, view, "▾")
	assert.Equal(t, 1, lipgloss.Height(view))
}

func TestViewShowsValue(t *testing.T) {
	m := New()
	m.Value = "07:45 PM"

	view := m.View()

	assert.Contains(t, view, "07:45 PM")
	assert.NotContains(t, view, "Select time")
}

func TestViewOpenRendersColumns(t *testing.T) {
	m := New()
	m.ClearIcon = "×"
	m.ToggleDropdown()

	view := m.View()

	assert.Contains(t, view, "▴")
	assert.Contains(t, view, "×")
	for _, want := range []string{"08", "12", "00", "04", "AM", "PM"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "13")

	bounds := m.Bounds()
	assert.Equal(t, bounds.Height, lipgloss.Height(view))
	assert.Equal(t, bounds.Width, lipgloss.Width(view))
}

func TestViewMarksCursorWhenFocused(t *testing.T) {
	m := New()
	m.ToggleDropdown()
	assert.NotContains(t, m.View(), cursorMark)

	m.Focus()
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 8)

	// 12 is the last visible hour row
	assert.Contains(t, lines[6], cursorMark+"12")
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", fit("ab", 4))
	assert.Equal(t, "abc…", fit("abcdef", 4))

	for _, s := range []string{"時刻", "時刻を選んでください", "a時刻を選んでください"} {
		for _, width := range []int{4, 5, 16} {
			assert.Equal(t, width, lipgloss.Width(fit(s, width)), "%q in %d cells", s, width)
		}
	}
}

func TestWideTextKeepsBounds(t *testing.T) {
	m := New()
	m.Placeholder = "時刻を選んでください"
	m.ClearIcon = "×"
	m.Mount()

	assert.Equal(t, m.Bounds().Width, lipgloss.Width(m.View()))

	m.ToggleDropdown()
	assert.Equal(t, m.Bounds().Width, lipgloss.Width(m.View()))

	// the arrow is drawn right after the field and a space
	arrowX := strings.Index(m.View(), "▴")
	require.GreaterOrEqual(t, arrowX, 0)
	assert.Equal(t, m.fieldWidth()+1, lipgloss.Width(m.View()[:arrowX]))

	m, _ = m.Update(press(m.fieldWidth()+1, 0))
	assert.False(t, m.IsOpen(), "pressing the arrow toggles closed")

	m.Value = "午後七時四十五分になりました"
	m.ToggleDropdown()
	m, cmd := m.Update(press(m.clearIconX(), 0))
	require.NotNil(t, cmd)
	assert.True(t, m.IsOpen(), "clear icon press is inside the picker")
	assert.Equal(t, m.Bounds().Width, lipgloss.Width(m.View()))
}

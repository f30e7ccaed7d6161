// Package timepicker provides a 12-hour time selection dropdown for Bubble Tea
// programs. The picker owns its hour, minute and period selection and reports
// every change through OnChange and a ChangeMsg.
package timepicker

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/time-picker/internal/clock"
	"github.com/stigoleg/time-picker/internal/ui/toggle"
)

const (
	defaultPlaceholder = "Select time"
	defaultWidth       = 16
	defaultVisibleRows = 5
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ChangeMsg is emitted after every selection change and after Clear. Time is
// nil when the assembled selection did not validate or the picker was cleared.
type ChangeMsg struct {
	ID   int
	Time *clock.TimeOfDay
}

// Valid reports whether the change carries a time.
func (c ChangeMsg) Valid() bool {
	return c.Time != nil
}

// Model is the time picker state.
type Model struct {
	// Value is shown in the display field. It is controlled by the host and
	// never written back into the selection.
	Value       string
	Placeholder string
	// ClearIcon enables the clear affordance when non-empty.
	ClearIcon string
	OnChange  func(t *clock.TimeOfDay)

	Width       int
	VisibleRows int
	IconSize    toggle.Size

	KeyMap KeyMap
	Styles Styles

	id        int
	selection clock.Selection
	open      bool
	focused   bool
	column    column
	cursor    [columnCount]int
	offset    [columnCount]int
	originX   int
	originY   int
	listener  ClickListener
}

// New returns an unmounted, unfocused picker at 12:00 AM with the dropdown closed.
func New() Model {
	m := Model{
		Placeholder: defaultPlaceholder,
		Width:       defaultWidth,
		VisibleRows: defaultVisibleRows,
		IconSize:    toggle.Small,
		KeyMap:      DefaultKeyMap(),
		Styles:      DefaultStyles(),
		id:          nextID(),
		selection:   clock.DefaultSelection(),
	}
	m.syncCursors()
	return m
}

// ID identifies the picker in ChangeMsg.
func (m Model) ID() int {
	return m.id
}

// Init implements the Bubble Tea component convention.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mount registers the outside-click listener. Call it when the picker
// becomes part of the rendered tree.
func (m *Model) Mount() {
	m.listener.Register()
}

// Unmount releases the outside-click listener. Presses delivered after
// Unmount never change the picker.
func (m *Model) Unmount() {
	m.listener.Release()
}

// Mounted reports whether the outside-click listener is registered.
func (m Model) Mounted() bool {
	return m.listener.Registered()
}

// SetOrigin records the screen cell of the picker's top-left corner.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Bounds is the screen area the picker currently occupies.
func (m Model) Bounds() Rect {
	w := m.fieldRowWidth()
	h := 1
	if m.open {
		w = max(w, dropdownWidth)
		h += m.rows() + 2
	}
	return Rect{X: m.originX, Y: m.originY, Width: w, Height: h}
}

// Focus enables keyboard handling.
func (m *Model) Focus() {
	m.focused = true
}

// Blur disables keyboard handling. Mouse input is still handled.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the picker handles keys.
func (m Model) Focused() bool {
	return m.focused
}

// IsOpen reports whether the dropdown is visible.
func (m Model) IsOpen() bool {
	return m.open
}

// Selection returns the current hour, minute and period.
func (m Model) Selection() clock.Selection {
	return m.selection
}

// ToggleDropdown flips the dropdown visibility.
func (m *Model) ToggleDropdown() {
	m.setOpen(!m.open)
}

// Close hides the dropdown.
func (m *Model) Close() {
	m.setOpen(false)
}

func (m *Model) setOpen(open bool) {
	if open && !m.open {
		m.syncCursors()
	}
	m.open = open
}

// SelectHour sets the hour. Values outside 01..12 are ignored and yield a
// nil command.
func (m *Model) SelectHour(hour string) tea.Cmd {
	if !clock.ValidHour(hour) {
		return nil
	}
	m.selection.Hour = hour
	m.syncCursor(hourColumn)
	return m.notify()
}

// SelectMinute sets the minute. Values outside 00..59 are ignored.
func (m *Model) SelectMinute(minute string) tea.Cmd {
	if !clock.ValidMinute(minute) {
		return nil
	}
	m.selection.Minute = minute
	m.syncCursor(minuteColumn)
	return m.notify()
}

// SelectPeriod sets AM or PM and closes the dropdown.
func (m *Model) SelectPeriod(period string) tea.Cmd {
	if !clock.ValidPeriod(period) {
		return nil
	}
	m.selection.Period = clock.Period(period)
	m.syncCursor(periodColumn)
	cmd := m.notify()
	m.open = false
	return cmd
}

// Clear resets the selection to 12:00 AM and reports a nil time. The dropdown
// keeps its visibility. Without a ClearIcon there is nothing to clear with and
// Clear is a no-op.
func (m *Model) Clear() tea.Cmd {
	if m.ClearIcon == "" {
		return nil
	}
	m.selection = clock.DefaultSelection()
	m.syncCursors()
	return m.emit(nil)
}

func (m *Model) notify() tea.Cmd {
	t, err := m.selection.Time()
	if err != nil {
		return m.emit(nil)
	}
	return m.emit(&t)
}

func (m *Model) emit(t *clock.TimeOfDay) tea.Cmd {
	if m.OnChange != nil {
		m.OnChange(t)
	}
	msg := ChangeMsg{ID: m.id, Time: t}
	return func() tea.Msg { return msg }
}

func (m Model) rows() int {
	if m.VisibleRows <= 0 {
		return defaultVisibleRows
	}
	return m.VisibleRows
}

func (m Model) fieldWidth() int {
	if m.Width <= 0 {
		return defaultWidth
	}
	return m.Width
}

func (m Model) indicator() toggle.Indicator {
	return toggle.Indicator{
		Toggled: m.open,
		Size:    m.IconSize,
	}
}

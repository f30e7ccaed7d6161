package timepicker

import tea "github.com/charmbracelet/bubbletea"

// Rect is an area of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ClickListener is a picker's subscription to pointer presses anywhere on
// screen. It only observes presses between Register and Release.
type ClickListener struct {
	registered bool
}

// Register starts observing presses.
func (l *ClickListener) Register() {
	l.registered = true
}

// Release stops observing presses.
func (l *ClickListener) Release() {
	l.registered = false
}

// Registered reports whether the listener currently observes presses.
func (l ClickListener) Registered() bool {
	return l.registered
}

// PressedOutside reports whether msg is a button press that lands outside
// bounds. Wheel events, releases and motion are not presses.
func (l ClickListener) PressedOutside(msg tea.MouseMsg, bounds Rect) bool {
	if !l.registered || !isPress(msg) {
		return false
	}
	return !bounds.Contains(msg.X, msg.Y)
}

func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel()
}

// Package clock holds the 12-hour time-of-day value used by the picker and
// the strict codec for its "HH:MM AM|PM" text form.
package clock

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Layout is the only text form accepted by Parse.
const Layout = "03:04 PM"

// ErrInvalidTime is wrapped by every Parse failure.
var ErrInvalidTime = errors.New("invalid time")

var assembledPattern = regexp.MustCompile(`^\d{2}:\d{2} (AM|PM)$`)

// Period is the AM/PM marker of a 12-hour time.
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// TimeOfDay is a wall-clock time without a date, stored in 24-hour form.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Parse validates s strictly against Layout. Leading or trailing text,
// single-digit fields, lowercase markers and out-of-range values are rejected.
func Parse(s string) (TimeOfDay, error) {
	if !assembledPattern.MatchString(s) {
		return TimeOfDay{}, fmt.Errorf("%w: %q does not match %q", ErrInvalidTime, s, Layout)
	}
	if s[:2] == "00" {
		return TimeOfDay{}, fmt.Errorf("%w: %q: hour out of range", ErrInvalidTime, s)
	}

	t, err := time.Parse(Layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour12 returns the hour on a 12-hour dial (1..12).
func (t TimeOfDay) Hour12() int {
	h := t.Hour % 12
	if h == 0 {
		return 12
	}
	return h
}

// Period returns AM for hours before noon and PM otherwise.
func (t TimeOfDay) Period() Period {
	if t.Hour < 12 {
		return AM
	}
	return PM
}

// String renders the time in Layout.
func (t TimeOfDay) String() string {
	return t.Format(Layout)
}

// Format renders the time with a Go time layout, e.g. "15:04".
func (t TimeOfDay) Format(layout string) string {
	return t.On(time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)).Format(layout)
}

// On anchors the time of day to the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Selection converts the time back into picker selection parts.
func (t TimeOfDay) Selection() Selection {
	return Selection{
		Hour:   fmt.Sprintf("%02d", t.Hour12()),
		Minute: fmt.Sprintf("%02d", t.Minute),
		Period: t.Period(),
	}
}

package clock

import (
	"fmt"
	"slices"
)

// Selection holds the hour, minute and period currently chosen in a picker.
// Each field is one of the values returned by the matching *Options function.
type Selection struct {
	Hour   string
	Minute string
	Period Period
}

// DefaultSelection is 12:00 AM.
func DefaultSelection() Selection {
	return Selection{Hour: "12", Minute: "00", Period: AM}
}

// String returns the assembled "HH:MM P" form.
func (s Selection) String() string {
	return Assemble(s.Hour, s.Minute, string(s.Period))
}

// Time parses the assembled selection.
func (s Selection) Time() (TimeOfDay, error) {
	return Parse(s.String())
}

// Assemble joins the parts without validating them.
func Assemble(hour, minute, period string) string {
	return hour + ":" + minute + " " + period
}

// HourOptions returns "01" through "12".
func HourOptions() []string {
	return padded(1, 12)
}

// MinuteOptions returns "00" through "59".
func MinuteOptions() []string {
	return padded(0, 59)
}

// PeriodOptions returns AM then PM.
func PeriodOptions() []string {
	return []string{string(AM), string(PM)}
}

// ValidHour reports whether h is one of HourOptions.
func ValidHour(h string) bool {
	return slices.Contains(HourOptions(), h)
}

// ValidMinute reports whether m is one of MinuteOptions.
func ValidMinute(m string) bool {
	return slices.Contains(MinuteOptions(), m)
}

// ValidPeriod reports whether p is AM or PM.
func ValidPeriod(p string) bool {
	return p == string(AM) || p == string(PM)
}

// Valid reports whether every part is inside its domain.
func (s Selection) Valid() bool {
	return ValidHour(s.Hour) && ValidMinute(s.Minute) && ValidPeriod(string(s.Period))
}

func padded(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("%02d", i))
	}
	return out
}

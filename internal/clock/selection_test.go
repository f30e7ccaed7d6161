package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	hours := HourOptions()
	require.Len(t, hours, 12)
	assert.Equal(t, "01", hours[0])
	assert.Equal(t, "12", hours[11])
	assert.NotContains(t, hours, "00")
	assert.NotContains(t, hours, "13")

	minutes := MinuteOptions()
	require.Len(t, minutes, 60)
	assert.Equal(t, "00", minutes[0])
	assert.Equal(t, "59", minutes[59])

	assert.Equal(t, []string{"AM", "PM"}, PeriodOptions())
}

func TestOptionsAreFreshCopies(t *testing.T) {
	hours := HourOptions()
	hours[0] = "99"
	assert.Equal(t, "01", HourOptions()[0])
}

func TestDefaultSelection(t *testing.T) {
	s := DefaultSelection()
	assert.Equal(t, "12:00 AM", s.String())
	assert.True(t, s.Valid())

	tod, err := s.Time()
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 0, Minute: 0}, tod)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidHour("07"))
	assert.False(t, ValidHour("7"))
	assert.False(t, ValidHour("13"))
	assert.False(t, ValidHour("00"))

	assert.True(t, ValidMinute("00"))
	assert.True(t, ValidMinute("59"))
	assert.False(t, ValidMinute("60"))

	assert.True(t, ValidPeriod("PM"))
	assert.False(t, ValidPeriod("pm"))

	assert.False(t, Selection{Hour: "12", Minute: "00", Period: "XM"}.Valid())
}

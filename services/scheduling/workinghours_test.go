package scheduling

import (
	"testing"
	"time"

	"taskpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"09:00", 540, true},
		{"17:30", 1050, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"25:00", 0, false},
		{"09:60", 0, false},
		{"nonsense", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := timeToMinutes(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 3, 2, 14, 37, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), startOfDay(in))
}

func TestDayWorkingWindow(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	t.Run("working day returns window", func(t *testing.T) {
		window, ok := dayWorkingWindow(monday, models.DefaultWorkingHours())
		require.True(t, ok)
		assert.Equal(t, monday.Add(9*time.Hour), window.Start)
		assert.Equal(t, monday.Add(17*time.Hour), window.End)
	})

	t.Run("non-working day", func(t *testing.T) {
		_, ok := dayWorkingWindow(saturday, models.DefaultWorkingHours())
		assert.False(t, ok)
	})

	t.Run("missing day entry treated as non-working", func(t *testing.T) {
		hours := []models.WorkingHour{
			{Day: "tuesday", IsWorkingDay: true, Start: "09:00", End: "17:00"},
		}
		_, ok := dayWorkingWindow(monday, hours)
		assert.False(t, ok)
	})

	t.Run("malformed start degrades to non-working", func(t *testing.T) {
		hours := []models.WorkingHour{
			{Day: "monday", IsWorkingDay: true, Start: "not-a-time", End: "17:00"},
		}
		_, ok := dayWorkingWindow(monday, hours)
		assert.False(t, ok)
	})

	t.Run("start at or after end degrades to non-working", func(t *testing.T) {
		hours := []models.WorkingHour{
			{Day: "monday", IsWorkingDay: true, Start: "17:00", End: "09:00"},
		}
		_, ok := dayWorkingWindow(monday, hours)
		assert.False(t, ok)

		hours[0].End = "17:00"
		_, ok = dayWorkingWindow(monday, hours)
		assert.False(t, ok)
	})
}

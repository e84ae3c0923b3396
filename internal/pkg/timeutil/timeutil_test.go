package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtClock(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 17, 45, 12, 999, time.UTC)

	got, err := AtClock(date, "10:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, loc), got)

	// Single-digit hour is accepted.
	got, err = AtClock(date, "9:05", loc)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 5, got.Minute())
}

func TestAtClock_Invalid(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"", "10", "10:0", "ab:cd", "25:00", "10:61", "10:00:00"} {
		_, err := AtClock(time.Now(), bad, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidClock, "input %q", bad)
	}
}

func TestMinutesBetween(t *testing.T) {
	t.Parallel()
	a := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, MinutesBetween(a, a))
	assert.Equal(t, 90, MinutesBetween(a, a.Add(90*time.Minute)))
	// Partial minutes floor.
	assert.Equal(t, 1, MinutesBetween(a, a.Add(119*time.Second)))
	// Reversed order clamps at zero instead of going negative.
	assert.Equal(t, 0, MinutesBetween(a.Add(time.Hour), a))
}

func TestMinutesToHours(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, MinutesToHours(0))
	assert.Equal(t, 8.0, MinutesToHours(480))
	assert.Equal(t, 8.92, MinutesToHours(535))
	assert.Equal(t, 0.02, MinutesToHours(1))
	assert.Equal(t, 7.5, MinutesToHours(450))
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()
	d := func(day int) time.Time { return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 1, DaysBetween(d(10), d(10)))
	assert.Equal(t, 3, DaysBetween(d(10), d(12)))
	assert.Equal(t, 0, DaysBetween(d(12), d(10)))
}

func TestMonthRange(t *testing.T) {
	t.Parallel()
	start, end, err := MonthRange("March 2025", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = MonthRange("2025-03", time.UTC)
	assert.Error(t, err)
}

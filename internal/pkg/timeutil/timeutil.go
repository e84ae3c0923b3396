package timeutil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidClock is returned when a wall-clock string is not H:MM or HH:MM.
var ErrInvalidClock = errors.New("invalid clock string, expected HH:MM")

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock splits a "H:MM"/"HH:MM" string into hour and minute.
func ParseClock(clock string) (hour, minute int, err error) {
	m := clockRegex.FindStringSubmatch(clock)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return hour, minute, nil
}

// AtClock combines the calendar day of date with a wall-clock string in the
// given location. Seconds and nanoseconds are zeroed.
func AtClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc), nil
}

// MinutesBetween returns the whole minutes from a to b, clamped at zero.
// If b is before a the result is 0, never negative.
func MinutesBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a) / time.Minute)
}

// MinutesToHours converts minutes to decimal hours rounded to two decimal
// places, rounding half away from zero.
func MinutesToHours(mins int) float64 {
	return math.Round(float64(mins)/60.0*100) / 100
}

// DateOnly truncates t to midnight in the given location.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	d := t.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the inclusive calendar-day count between two
// midnight-normalized dates. Same day yields 1.
func DaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// MonthRange parses a month label such as "March 2025" and returns the first
// day of that month and the first day of the next month in loc.
func MonthRange(label string, loc *time.Location) (start, end time.Time, err error) {
	t, err := time.ParseInLocation("January 2006", label, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month label %q: %w", label, err)
	}
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0), nil
}

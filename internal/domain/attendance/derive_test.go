package attendance

import (
	"testing"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

func testSchedule() schedule.Resolved {
	return schedule.Resolved{
		InTime:       "10:00",
		OutTime:      "18:30",
		WeeklyOff:    []string{"Sunday"},
		GraceMinutes: 15,
		Location:     time.UTC,
	}
}

func punch(day int, hour, minute int) *time.Time {
	t := time.Date(2025, 3, day, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestDerive_MissingPunches(t *testing.T) {
	t.Parallel()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		name    string
		in, out *time.Time
	}{
		{"no punches", nil, nil},
		{"open session", punch(10, 10, 0), nil},
		{"checkout only", nil, punch(10, 18, 30)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := Derive(date, tc.in, tc.out, testSchedule())
			assert.Equal(t, StatusAbsent, d.Status)
			assert.Zero(t, d.TotalMinutes)
			assert.Zero(t, d.LateMinutes)
			assert.Zero(t, d.OvertimeMinutes)
		})
	}
}

func TestDerive_StatusThresholds(t *testing.T) {
	t.Parallel()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		in, out    *time.Time
		wantStatus Status
		wantTotal  int
	}{
		{"full day is present", punch(10, 10, 0), punch(10, 18, 30), StatusPresent, 510},
		{"exactly 8h is present", punch(10, 10, 0), punch(10, 18, 0), StatusPresent, 480},
		{"one minute short of 8h is half day", punch(10, 10, 0), punch(10, 17, 59), StatusHalfDay, 479},
		{"exactly 4h is half day", punch(10, 10, 0), punch(10, 14, 0), StatusHalfDay, 240},
		{"under 4h is absent", punch(10, 10, 0), punch(10, 13, 59), StatusAbsent, 239},
		{"checkout before checkin clamps to zero", punch(10, 18, 0), punch(10, 10, 0), StatusAbsent, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Derive(date, tt.in, tt.out, testSchedule())
			assert.Equal(t, tt.wantStatus, d.Status)
			assert.Equal(t, tt.wantTotal, d.TotalMinutes)
		})
	}
}

func TestDerive_LateEarlyOvertime(t *testing.T) {
	t.Parallel()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// 25 minutes late, left 40 minutes early.
	d := Derive(date, punch(10, 10, 25), punch(10, 17, 50), testSchedule())
	assert.Equal(t, 25, d.LateMinutes)
	assert.Equal(t, 40, d.EarlyLeaveMinutes)
	assert.Zero(t, d.OvertimeMinutes)

	// Early arrival, 90 minutes overtime.
	d = Derive(date, punch(10, 9, 30), punch(10, 20, 0), testSchedule())
	assert.Zero(t, d.LateMinutes)
	assert.Zero(t, d.EarlyLeaveMinutes)
	assert.Equal(t, 90, d.OvertimeMinutes)
	assert.Equal(t, 1.5, d.OvertimeHours)
}

func TestDerive_AutoCheckoutScenario(t *testing.T) {
	t.Parallel()
	// Checked in 09:50 against a 10:00-18:30 shift with a 15 minute grace
	// period; the sweeper closes at 18:45.
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	d := Derive(date, punch(10, 9, 50), punch(10, 18, 45), testSchedule())

	assert.Equal(t, StatusPresent, d.Status)
	assert.Equal(t, 535, d.TotalMinutes)
	assert.Equal(t, 8.92, d.TotalHours)
	assert.Equal(t, 15, d.OvertimeMinutes)
}

func TestDerive_CompanyTimezone(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)

	sched := testSchedule()
	sched.Location = loc

	// 04:30 UTC is 10:00 in Kolkata: punctual, not late.
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	in := time.Date(2025, 3, 10, 4, 30, 0, 0, time.UTC)
	out := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC) // 18:30 local

	d := Derive(date, &in, &out, sched)
	assert.Equal(t, StatusPresent, d.Status)
	assert.Zero(t, d.LateMinutes)
	assert.Zero(t, d.EarlyLeaveMinutes)
	assert.Zero(t, d.OvertimeMinutes)
}

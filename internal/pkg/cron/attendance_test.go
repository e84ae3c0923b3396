package cron

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/leave"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
)

type fakeAttendanceRepo struct {
	open   []attendance.Attendance
	closed []attendance.Attendance
}

func (r *fakeAttendanceRepo) Create(_ context.Context, _ *attendance.Attendance) error { return nil }
func (r *fakeAttendanceRepo) GetByID(_ context.Context, _, _ string) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (r *fakeAttendanceRepo) ListByEmployeeRange(_ context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *fakeAttendanceRepo) ListByCompany(_ context.Context, _ string, _ attendance.ListFilter) ([]attendance.Attendance, error) {
	return nil, nil
}
func (r *fakeAttendanceRepo) Update(_ context.Context, _ *attendance.Attendance) error { return nil }
func (r *fakeAttendanceRepo) ListOpenInWindow(_ context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.open {
		if !a.Date.Before(start) && !a.Date.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAttendanceRepo) CloseOpenSession(_ context.Context, att *attendance.Attendance) (bool, error) {
	r.closed = append(r.closed, *att)
	return true, nil
}
func (r *fakeAttendanceRepo) UpsertStatusRange(_ context.Context, _ string, _ []string, _, _ time.Time, _ attendance.Status) error {
	return nil
}
func (r *fakeAttendanceRepo) DeleteStatusRange(_ context.Context, _ string, _, _ time.Time, _ attendance.Status) error {
	return nil
}

type fakeLeaveRepo struct {
	approved []leave.Leave
}

func (r *fakeLeaveRepo) Create(_ context.Context, _ *leave.Leave) error { return nil }
func (r *fakeLeaveRepo) GetByID(_ context.Context, _, _ string) (*leave.Leave, error) {
	return nil, leave.ErrLeaveNotFound
}
func (r *fakeLeaveRepo) ListByCompany(_ context.Context, _ string, _ leave.ListFilter) ([]leave.Leave, error) {
	return nil, nil
}
func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, _ string) ([]leave.Leave, error) {
	return nil, nil
}
func (r *fakeLeaveRepo) Update(_ context.Context, _ *leave.Leave) error { return nil }
func (r *fakeLeaveRepo) HasOverlap(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}
func (r *fakeLeaveRepo) ListApprovedInRange(_ context.Context, employeeID string, start, end time.Time) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.approved {
		if l.EmployeeID == employeeID && !start.After(l.EndDate) && !end.Before(l.StartDate) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fixedScheduleService struct {
	resolved schedule.Resolved
}

func (s *fixedScheduleService) Resolve(_ context.Context, _, _ string) schedule.Resolved {
	return s.resolved
}
func (s *fixedScheduleService) Create(_ context.Context, _ auth.Principal, _ schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	return schedule.ScheduleResponse{}, nil
}
func (s *fixedScheduleService) Get(_ context.Context, _ auth.Principal, _ string) (schedule.ScheduleResponse, error) {
	return schedule.ScheduleResponse{}, nil
}
func (s *fixedScheduleService) List(_ context.Context, _ auth.Principal) ([]schedule.ScheduleResponse, error) {
	return nil, nil
}
func (s *fixedScheduleService) Deactivate(_ context.Context, _ auth.Principal, _ string) error {
	return nil
}

func defaultShift(grace int) schedule.Resolved {
	return schedule.Resolved{
		InTime:       "10:00",
		OutTime:      "18:30",
		WeeklyOff:    []string{"Sunday"},
		GraceMinutes: grace,
		Location:     time.UTC,
	}
}

func openSession(d int, hour, minute int) attendance.Attendance {
	in := time.Date(2025, 3, d, hour, minute, 0, 0, time.UTC)
	return attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: uuid.NewString(),
		CompanyID:  uuid.NewString(),
		Date:       time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC),
		CheckIn:    &in,
		Status:     attendance.StatusAbsent,
		LogType:    attendance.LogTypeSelf,
	}
}

func newJobs(attendanceRepo *fakeAttendanceRepo, leaveRepo *fakeLeaveRepo, grace int, now time.Time) *AttendanceJobs {
	jobs := NewAttendanceJobs(attendanceRepo, leaveRepo,
		&fixedScheduleService{resolved: defaultShift(grace)}, time.Minute, 15)
	jobs.now = func() time.Time { return now }
	return jobs
}

func TestAutoCheckout_ClosesAtDeadline(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{open: []attendance.Attendance{openSession(11, 9, 50)}}
	jobs := newJobs(repo, &fakeLeaveRepo{}, 15, time.Date(2025, 3, 11, 19, 0, 0, 0, time.UTC))

	require.NoError(t, jobs.AutoCheckoutOpenSessions(context.Background()))
	require.Len(t, repo.closed, 1)

	att := repo.closed[0]
	require.NotNil(t, att.CheckOut)
	// Closed at scheduled out plus grace, not at sweep time.
	assert.Equal(t, time.Date(2025, 3, 11, 18, 45, 0, 0, time.UTC), *att.CheckOut)
	assert.Equal(t, attendance.StatusPresent, att.Status)
	assert.Equal(t, 535, att.TotalMinutes)
	assert.InDelta(t, 8.92, att.TotalHours, 0.001)
	assert.Equal(t, 15, att.OvertimeMinutes)
	assert.Equal(t, attendance.LogTypeSystem, att.LogType)
	assert.True(t, att.AutoCheckout)
}

func TestAutoCheckout_ClosesAcrossUTCMidnight(t *testing.T) {
	t.Parallel()

	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// Pacific shift: the 18:45 local deadline is already past UTC midnight,
	// so the record carries yesterday's UTC date when the sweep fires.
	in := time.Date(2025, 3, 5, 9, 50, 0, 0, la)
	session := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: uuid.NewString(),
		CompanyID:  uuid.NewString(),
		Date:       time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		CheckIn:    &in,
		Status:     attendance.StatusAbsent,
		LogType:    attendance.LogTypeSelf,
	}
	repo := &fakeAttendanceRepo{open: []attendance.Attendance{session}}

	shift := defaultShift(15)
	shift.Location = la
	jobs := NewAttendanceJobs(repo, &fakeLeaveRepo{},
		&fixedScheduleService{resolved: shift}, time.Minute, 15)
	// 19:00 local on March 5 is 03:00 UTC on March 6.
	jobs.now = func() time.Time { return time.Date(2025, 3, 6, 3, 0, 0, 0, time.UTC) }

	require.NoError(t, jobs.AutoCheckoutOpenSessions(context.Background()))
	require.Len(t, repo.closed, 1)

	att := repo.closed[0]
	require.NotNil(t, att.CheckOut)
	assert.True(t, att.CheckOut.Equal(time.Date(2025, 3, 5, 18, 45, 0, 0, la)))
	assert.Equal(t, attendance.StatusPresent, att.Status)
	assert.Equal(t, 535, att.TotalMinutes)
}

func TestAutoCheckout_WaitsForGracePeriod(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{open: []attendance.Attendance{openSession(11, 10, 0)}}
	jobs := newJobs(repo, &fakeLeaveRepo{}, 15, time.Date(2025, 3, 11, 18, 40, 0, 0, time.UTC))

	require.NoError(t, jobs.AutoCheckoutOpenSessions(context.Background()))
	assert.Empty(t, repo.closed)
}

func TestAutoCheckout_DefaultGraceWhenScheduleHasNone(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{open: []attendance.Attendance{openSession(11, 10, 0)}}
	// Schedule grace 0: the configured default of 15 minutes applies.
	jobs := newJobs(repo, &fakeLeaveRepo{}, 0, time.Date(2025, 3, 11, 18, 40, 0, 0, time.UTC))

	require.NoError(t, jobs.AutoCheckoutOpenSessions(context.Background()))
	assert.Empty(t, repo.closed)

	jobs.now = func() time.Time { return time.Date(2025, 3, 11, 18, 46, 0, 0, time.UTC) }
	require.NoError(t, jobs.AutoCheckoutOpenSessions(context.Background()))
	require.Len(t, repo.closed, 1)
	assert.Equal(t, time.Date(2025, 3, 11, 18, 45, 0, 0, time.UTC), *repo.closed[0].CheckOut)
}

func TestAutoCheckout_SkipsWeeklyOff(t *testing.T) {
	t.Parallel()

	// Sunday session stays open for HR review.
	repo := &fakeAttendanceRepo{open: []attendance.Attendance{openSession(9, 10, 0)}}
	jobs := newJobs(repo, &fakeLeaveRepo{}, 15, time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC))

	require.NoError(t, jobs.AutoCheckoutOpenSessions(context.Background()))
	assert.Empty(t, repo.closed)
}

func TestAutoCheckout_SkipsApprovedLeave(t *testing.T) {
	t.Parallel()

	session := openSession(11, 10, 0)
	repo := &fakeAttendanceRepo{open: []attendance.Attendance{session}}
	leaveRepo := &fakeLeaveRepo{approved: []leave.Leave{{
		EmployeeID: session.EmployeeID,
		StartDate:  session.Date,
		EndDate:    session.Date,
		Status:     leave.StatusApproved,
	}}}
	jobs := newJobs(repo, leaveRepo, 15, time.Date(2025, 3, 11, 23, 0, 0, 0, time.UTC))

	require.NoError(t, jobs.AutoCheckoutOpenSessions(context.Background()))
	assert.Empty(t, repo.closed)
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()

	repo := &fakeAttendanceRepo{open: []attendance.Attendance{openSession(11, 9, 50)}}
	jobs := newJobs(repo, &fakeLeaveRepo{}, 15, time.Date(2025, 3, 11, 19, 0, 0, 0, time.UTC))

	s := NewScheduler()
	jobs.RegisterJobs(s)
	s.RunOnce(context.Background())

	assert.Len(t, repo.closed, 1)
}

package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/leave"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/timeutil"
)

// AttendanceJobs closes forgotten check-ins. An open session is swept once
// the local clock passes scheduled out time plus the grace period; the
// session is closed at exactly that boundary, not at sweep time.
type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	leaveRepo       leave.LeaveRepository
	scheduleService schedule.ScheduleService
	interval        time.Duration
	defaultGrace    int
	now             func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	scheduleService schedule.ScheduleService,
	interval time.Duration,
	defaultGraceMinutes int,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		leaveRepo:       leaveRepo,
		scheduleService: scheduleService,
		interval:        interval,
		defaultGrace:    defaultGraceMinutes,
		now:             time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_checkout_open_sessions", j.interval, j.AutoCheckoutOpenSessions)
}

// AutoCheckoutOpenSessions sweeps recent open sessions. Rows are dated by
// the company-local day, so the sweep covers a window around the UTC day
// rather than a single date: a late Pacific shift is still dated yesterday
// in UTC terms, an early Auckland one already tomorrow. Each close is a
// conditional update, so a sweep racing a self check-out (or another
// sweep) never double-closes a session.
func (j *AttendanceJobs) AutoCheckoutOpenSessions(ctx context.Context) error {
	now := j.now()
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)

	open, err := j.attendanceRepo.ListOpenInWindow(ctx, today.AddDate(0, 0, -2), today.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("failed to list open sessions: %w", err)
	}
	if len(open) == 0 {
		return nil
	}

	closedCount := 0
	for i := range open {
		closed, err := j.sweepSession(ctx, &open[i], now)
		if err != nil {
			slog.Error("Cron: failed to sweep attendance session",
				"attendance_id", open[i].ID, "error", err)
			continue
		}
		if closed {
			closedCount++
		}
	}

	if closedCount > 0 {
		slog.Info("Cron: auto-closed stale attendance sessions",
			"swept", len(open), "closed", closedCount)
	}
	return nil
}

func (j *AttendanceJobs) sweepSession(ctx context.Context, att *attendance.Attendance, now time.Time) (bool, error) {
	sched := j.scheduleService.Resolve(ctx, att.CompanyID, att.EmployeeID)

	// DATE values scan as midnight UTC; rebase the label into the
	// schedule's location so the shift boundary lands on the right day.
	y, m, d := att.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, sched.Location)

	// Days the employee should not be working are left open for HR review
	// rather than force-closed.
	if sched.IsWeeklyOff(day) {
		return false, nil
	}
	onLeave, err := j.onApprovedLeave(ctx, att)
	if err != nil {
		return false, err
	}
	if onLeave {
		return false, nil
	}

	scheduledOut, err := timeutil.AtClock(day, sched.OutTime, sched.Location)
	if err != nil {
		return false, err
	}
	grace := sched.GraceMinutes
	if grace == 0 {
		grace = j.defaultGrace
	}
	deadline := scheduledOut.Add(time.Duration(grace) * time.Minute)
	if now.Before(deadline) {
		return false, nil
	}

	closeAt := deadline
	att.CheckOut = &closeAt
	att.LogType = attendance.LogTypeSystem
	att.AutoCheckout = true
	attendance.Derive(day, att.CheckIn, att.CheckOut, sched).Apply(att)

	return j.attendanceRepo.CloseOpenSession(ctx, att)
}

func (j *AttendanceJobs) onApprovedLeave(ctx context.Context, att *attendance.Attendance) (bool, error) {
	leaves, err := j.leaveRepo.ListApprovedInRange(ctx, att.EmployeeID, att.Date, att.Date)
	if err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}
	return len(leaves) > 0, nil
}

package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	scheduleService schedule.ScheduleService
	now             func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleService schedule.ScheduleService,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		scheduleService: scheduleService,
		now:             time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, p auth.Principal, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionAttendanceCheckIn, p.CompanyID) {
		return attendance.AttendanceResponse{}, auth.ErrForbidden
	}
	// Checking in on behalf of someone else requires the edit capability.
	if !p.Owns(req.EmployeeID) && !auth.CanPerform(p, auth.ActionAttendanceEdit, p.CompanyID) {
		return attendance.AttendanceResponse{}, auth.ErrForbidden
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, p.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	sched := s.scheduleService.Resolve(ctx, p.CompanyID, emp.ID)
	now := s.now().In(sched.Location)
	date := timeutil.DateOnly(now, sched.Location)

	if sched.IsWeeklyOff(now) {
		return attendance.AttendanceResponse{}, attendance.ErrNonWorkingDay
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		switch {
		case existing.CheckIn != nil:
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		case existing.Status == attendance.StatusHoliday || existing.Status == attendance.StatusLeave:
			return attendance.AttendanceResponse{}, attendance.ErrNonWorkingDay
		}
	}

	checkIn := now
	att := &attendance.Attendance{
		EmployeeID: emp.ID,
		CompanyID:  p.CompanyID,
		Date:       date,
		CheckIn:    &checkIn,
		Status:     attendance.StatusAbsent,
		LogType:    attendance.LogTypeSelf,
	}

	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att.EmployeeName = emp.FullName
	att.EmployeeCode = emp.EmployeeCode
	return attendance.ToResponse(att), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, p auth.Principal, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionAttendanceCheckOut, p.CompanyID) {
		return attendance.AttendanceResponse{}, auth.ErrForbidden
	}
	if !p.Owns(req.EmployeeID) && !auth.CanPerform(p, auth.ActionAttendanceEdit, p.CompanyID) {
		return attendance.AttendanceResponse{}, auth.ErrForbidden
	}

	sched := s.scheduleService.Resolve(ctx, p.CompanyID, req.EmployeeID)
	now := s.now().In(sched.Location)
	date := timeutil.DateOnly(now, sched.Location)

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if att.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if att.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := now
	att.CheckOut = &checkOut
	attendance.Derive(date, att.CheckIn, att.CheckOut, sched).Apply(att)

	closed, err := s.attendanceRepo.CloseOpenSession(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !closed {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	return attendance.ToResponse(att), nil
}

// ManualUpdate implements attendance.AttendanceService. HR supplies local
// wall-clock punches; the day is re-derived from them.
func (s *AttendanceServiceImpl) ManualUpdate(ctx context.Context, p auth.Principal, employeeID string, req attendance.ManualUpdateRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionAttendanceEdit, p.CompanyID) {
		return attendance.AttendanceResponse{}, auth.ErrForbidden
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, p.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	sched := s.scheduleService.Resolve(ctx, p.CompanyID, emp.ID)
	date, _ := time.ParseInLocation("2006-01-02", req.Date, sched.Location)

	var checkIn, checkOut *time.Time
	if req.CheckIn != nil {
		t, err := timeutil.AtClock(date, *req.CheckIn, sched.Location)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		checkIn = &t
	}
	if req.CheckOut != nil {
		t, err := timeutil.AtClock(date, *req.CheckOut, sched.Location)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		checkOut = &t
	}

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		att = &attendance.Attendance{
			EmployeeID: emp.ID,
			CompanyID:  p.CompanyID,
			Date:       date,
		}
	}

	att.CheckIn = checkIn
	att.CheckOut = checkOut
	att.LogType = attendance.LogTypeManual
	att.AutoCheckout = false
	attendance.Derive(date, att.CheckIn, att.CheckOut, sched).Apply(att)

	if att.ID == "" {
		err = s.attendanceRepo.Create(ctx, att)
	} else {
		err = s.attendanceRepo.Update(ctx, att)
	}
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att.EmployeeName = emp.FullName
	att.EmployeeCode = emp.EmployeeCode
	return attendance.ToResponse(att), nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, p auth.Principal, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if !auth.CanPerform(p, auth.ActionAttendanceViewOwn, p.CompanyID) || p.EmployeeID == nil {
		return nil, auth.ErrForbidden
	}

	start, end := filter.StartDate, filter.EndDate
	if start.IsZero() || end.IsZero() {
		// Default to the last 30 days.
		end = timeutil.DateOnly(s.now(), time.UTC)
		start = end.AddDate(0, 0, -30)
	}

	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, *p.EmployeeID, start, end)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponseList(records), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, p auth.Principal, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if !auth.CanPerform(p, auth.ActionAttendanceView, p.CompanyID) {
		return nil, auth.ErrForbidden
	}

	records, err := s.attendanceRepo.ListByCompany(ctx, p.CompanyID, filter)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponseList(records), nil
}

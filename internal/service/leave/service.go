package leave

import (
	"context"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/leave"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/timeutil"
)

type LeaveServiceImpl struct {
	leaveRepo      leave.LeaveRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, p auth.Principal, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionLeaveApply, p.CompanyID) {
		return leave.LeaveResponse{}, auth.ErrForbidden
	}
	// Filing on behalf of someone else requires the decide capability.
	if !p.Owns(req.EmployeeID) && !auth.CanPerform(p, auth.ActionLeaveDecide, p.CompanyID) {
		return leave.LeaveResponse{}, auth.ErrForbidden
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, p.CompanyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return leave.LeaveResponse{}, leave.ErrInvalidLeaveRange
	}

	overlaps, err := s.leaveRepo.HasOverlap(ctx, emp.ID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrLeaveOverlaps
	}

	l := &leave.Leave{
		EmployeeID: emp.ID,
		CompanyID:  p.CompanyID,
		Type:       leave.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		TotalDays:  timeutil.DaysBetween(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}
	if err := s.leaveRepo.Create(ctx, l); err != nil {
		return leave.LeaveResponse{}, err
	}

	l.EmployeeName = emp.FullName
	l.EmployeeCode = emp.EmployeeCode
	return leave.ToResponse(l), nil
}

// Decide implements leave.LeaveService. Approval stamps leave days over the
// request span; rejection leaves attendance untouched.
func (s *LeaveServiceImpl) Decide(ctx context.Context, p auth.Principal, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionLeaveDecide, p.CompanyID) {
		return leave.LeaveResponse{}, auth.ErrForbidden
	}

	l, err := s.leaveRepo.GetByID(ctx, p.CompanyID, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if l.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyFinal
	}

	decidedAt := s.now()
	l.Status = leave.Status(req.Status)
	l.DecidedBy = &p.UserID
	l.DecidedAt = &decidedAt

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return leave.LeaveResponse{}, err
	}

	if l.Status == leave.StatusApproved {
		err := s.attendanceRepo.UpsertStatusRange(ctx, p.CompanyID,
			[]string{l.EmployeeID}, l.StartDate, l.EndDate, attendance.StatusLeave)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
	}

	return leave.ToResponse(l), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, p auth.Principal) ([]leave.LeaveResponse, error) {
	if !auth.CanPerform(p, auth.ActionLeaveViewOwn, p.CompanyID) || p.EmployeeID == nil {
		return nil, auth.ErrForbidden
	}

	records, err := s.leaveRepo.ListByEmployee(ctx, *p.EmployeeID)
	if err != nil {
		return nil, err
	}

	return leave.ToResponseList(records), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, p auth.Principal, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	if !auth.CanPerform(p, auth.ActionLeaveView, p.CompanyID) {
		return nil, auth.ErrForbidden
	}

	records, err := s.leaveRepo.ListByCompany(ctx, p.CompanyID, filter)
	if err != nil {
		return nil, err
	}

	return leave.ToResponseList(records), nil
}

package schedule

import (
	"context"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/company"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
)

// Built-in shift used when neither the employee nor the company carries a
// schedule definition.
const (
	DefaultInTime  = "10:00"
	DefaultOutTime = "18:30"
)

var DefaultWeeklyOff = []string{"Sunday"}

type ScheduleServiceImpl struct {
	scheduleRepo schedule.WorkScheduleRepository
	companyRepo  company.CompanyRepository
}

func NewScheduleService(
	scheduleRepo schedule.WorkScheduleRepository,
	companyRepo company.CompanyRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		companyRepo:  companyRepo,
	}
}

// Resolve implements schedule.ScheduleService. The chain is: the
// employee's active schedule, then company defaults, then the built-in
// shift. Lookup failures degrade to the next level instead of erroring so
// attendance and payroll always have a schedule to work against.
func (s *ScheduleServiceImpl) Resolve(ctx context.Context, companyID, employeeID string) schedule.Resolved {
	resolved := schedule.Resolved{
		InTime:    DefaultInTime,
		OutTime:   DefaultOutTime,
		WeeklyOff: DefaultWeeklyOff,
		Location:  time.UTC,
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err == nil {
		resolved.Location = comp.Location()
		if comp.DefaultInTime != "" {
			resolved.InTime = comp.DefaultInTime
		}
		if comp.DefaultOutTime != "" {
			resolved.OutTime = comp.DefaultOutTime
		}
		if len(comp.DefaultWeeklyOff) > 0 {
			resolved.WeeklyOff = comp.DefaultWeeklyOff
		}
	}

	ws, err := s.scheduleRepo.GetActiveByEmployee(ctx, employeeID, companyID)
	if err == nil {
		resolved.InTime = ws.InTime
		resolved.OutTime = ws.OutTime
		resolved.GraceMinutes = ws.GracePeriodMinutes
		if len(ws.WeeklyOff) > 0 {
			resolved.WeeklyOff = ws.WeeklyOff
		}
	}

	return resolved
}

// Create implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Create(ctx context.Context, p auth.Principal, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if !auth.CanPerform(p, auth.ActionScheduleManage, p.CompanyID) {
		return schedule.ScheduleResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.EffectiveFrom)
	ws := schedule.WorkSchedule{
		CompanyID:          p.CompanyID,
		EmployeeID:         req.EmployeeID,
		Name:               req.Name,
		InTime:             req.InTime,
		OutTime:            req.OutTime,
		WeeklyOff:          req.WeeklyOff,
		GracePeriodMinutes: req.GracePeriodMinutes,
		ShiftType:          schedule.ShiftType(req.ShiftType),
		EffectiveFrom:      from,
		IsActive:           true,
	}
	if req.EffectiveTo != nil {
		to, _ := time.Parse("2006-01-02", *req.EffectiveTo)
		ws.EffectiveTo = &to
	}

	created, err := s.scheduleRepo.Create(ctx, ws)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return schedule.ToResponse(created), nil
}

// Get implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Get(ctx context.Context, p auth.Principal, id string) (schedule.ScheduleResponse, error) {
	if !auth.CanPerform(p, auth.ActionScheduleManage, p.CompanyID) {
		return schedule.ScheduleResponse{}, auth.ErrForbidden
	}

	ws, err := s.scheduleRepo.GetByID(ctx, id, p.CompanyID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return schedule.ToResponse(ws), nil
}

// List implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) List(ctx context.Context, p auth.Principal) ([]schedule.ScheduleResponse, error) {
	if !auth.CanPerform(p, auth.ActionScheduleManage, p.CompanyID) {
		return nil, auth.ErrForbidden
	}

	schedules, err := s.scheduleRepo.ListByCompany(ctx, p.CompanyID)
	if err != nil {
		return nil, err
	}

	return schedule.ToResponseList(schedules), nil
}

// Deactivate implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Deactivate(ctx context.Context, p auth.Principal, id string) error {
	if !auth.CanPerform(p, auth.ActionScheduleManage, p.CompanyID) {
		return auth.ErrForbidden
	}

	return s.scheduleRepo.Deactivate(ctx, id, p.CompanyID)
}

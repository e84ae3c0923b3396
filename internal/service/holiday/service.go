package holiday

import (
	"context"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/holiday"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/timeutil"
)

type HolidayServiceImpl struct {
	holidayRepo  holiday.HolidayRepository
	employeeRepo employee.EmployeeRepository
}

func NewHolidayService(
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
) *HolidayServiceImpl {
	return &HolidayServiceImpl{
		holidayRepo:  holidayRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, p auth.Principal, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionHolidayManage, p.CompanyID) {
		return holiday.HolidayResponse{}, auth.ErrForbidden
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return holiday.HolidayResponse{}, holiday.ErrInvalidRange
	}

	typ := holiday.TypePaid
	if req.Type != "" {
		typ = holiday.Type(req.Type)
	}

	h := &holiday.Holiday{
		CompanyID: p.CompanyID,
		Title:     req.Title,
		StartDate: start,
		EndDate:   end,
		Type:      typ,
		IsPaid:    typ.Paid(),
		TotalDays: timeutil.DaysBetween(start, end),
	}

	employeeIDs, err := s.employeeRepo.ListActiveIDs(ctx, p.CompanyID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if err := s.holidayRepo.CreateWithAttendance(ctx, h, employeeIDs); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(h), nil
}

// Update implements holiday.HolidayService. Moving a holiday clears the
// stamped days of the old range before stamping the new one.
func (s *HolidayServiceImpl) Update(ctx context.Context, p auth.Principal, id string, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionHolidayManage, p.CompanyID) {
		return holiday.HolidayResponse{}, auth.ErrForbidden
	}

	existing, err := s.holidayRepo.GetByID(ctx, p.CompanyID, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated := *existing
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.StartDate != nil {
		updated.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		updated.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	if req.Type != nil {
		updated.Type = holiday.Type(*req.Type)
	}
	updated.IsPaid = updated.Type.Paid()
	if updated.EndDate.Before(updated.StartDate) {
		return holiday.HolidayResponse{}, holiday.ErrInvalidRange
	}
	updated.TotalDays = timeutil.DaysBetween(updated.StartDate, updated.EndDate)

	employeeIDs, err := s.employeeRepo.ListActiveIDs(ctx, p.CompanyID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if err := s.holidayRepo.ReplaceWithAttendance(ctx, existing, &updated, employeeIDs); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(&updated), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, p auth.Principal, id string) error {
	if !auth.CanPerform(p, auth.ActionHolidayManage, p.CompanyID) {
		return auth.ErrForbidden
	}

	h, err := s.holidayRepo.GetByID(ctx, p.CompanyID, id)
	if err != nil {
		return err
	}

	return s.holidayRepo.DeleteWithAttendance(ctx, h)
}

// List implements holiday.HolidayService. Viewing is open to every role.
func (s *HolidayServiceImpl) List(ctx context.Context, p auth.Principal) ([]holiday.HolidayResponse, error) {
	if !auth.CanPerform(p, auth.ActionHolidayView, p.CompanyID) {
		return nil, auth.ErrForbidden
	}

	records, err := s.holidayRepo.ListByCompany(ctx, p.CompanyID)
	if err != nil {
		return nil, err
	}

	return holiday.ToResponseList(records), nil
}

package employee

import (
	"context"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, p auth.Principal, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionEmployeeManage, p.CompanyID) {
		return employee.EmployeeResponse{}, auth.ErrForbidden
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	e := employee.Employee{
		CompanyID:    p.CompanyID,
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Status:       employee.StatusActive,
		BaseSalary:   req.BaseSalary,
		JoinDate:     joinDate,
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService. Employees may read their own
// record; everything else needs the view capability.
func (s *EmployeeServiceImpl) Get(ctx context.Context, p auth.Principal, id string) (employee.EmployeeResponse, error) {
	selfLookup := p.EmployeeID != nil && *p.EmployeeID == id
	if !selfLookup && !auth.CanPerform(p, auth.ActionEmployeeView, p.CompanyID) {
		return employee.EmployeeResponse{}, auth.ErrForbidden
	}

	e, err := s.employeeRepo.GetByID(ctx, id, p.CompanyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, p auth.Principal, filter employee.ListEmployeeFilter) (employee.ListEmployeeResponse, error) {
	if !auth.CanPerform(p, auth.ActionEmployeeView, p.CompanyID) {
		return employee.ListEmployeeResponse{}, auth.ErrForbidden
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.employeeRepo.List(ctx, filter, p.CompanyID)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(records)),
		Total:     total,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}
	for _, e := range records {
		resp.Employees = append(resp.Employees, employee.ToResponse(e))
	}

	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, p auth.Principal, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionEmployeeManage, p.CompanyID) {
		return employee.EmployeeResponse{}, auth.ErrForbidden
	}

	e, err := s.employeeRepo.GetByID(ctx, id, p.CompanyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Status != nil {
		e.Status = employee.Status(*req.Status)
	}
	if req.BaseSalary != nil {
		e.BaseSalary = *req.BaseSalary
	}

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// Delete implements employee.EmployeeService. Admin only.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, p auth.Principal, id string) error {
	if !auth.CanPerform(p, auth.ActionEmployeeDelete, p.CompanyID) {
		return auth.ErrForbidden
	}

	return s.employeeRepo.Delete(ctx, id, p.CompanyID)
}

package company

import (
	"context"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) *CompanyServiceImpl {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func toResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		Timezone:         c.Timezone,
		DefaultInTime:    c.DefaultInTime,
		DefaultOutTime:   c.DefaultOutTime,
		DefaultWeeklyOff: c.DefaultWeeklyOff,
	}
}

// Get implements company.CompanyService. Any member of the company may
// read its settings.
func (s *CompanyServiceImpl) Get(ctx context.Context, p auth.Principal) (company.CompanyResponse, error) {
	if p.CompanyID == "" {
		return company.CompanyResponse{}, auth.ErrForbidden
	}

	c, err := s.companyRepo.GetByID(ctx, p.CompanyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toResponse(c), nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, p auth.Principal, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}
	if !auth.CanPerform(p, auth.ActionCompanyManage, p.CompanyID) {
		return company.CompanyResponse{}, auth.ErrForbidden
	}

	c, err := s.companyRepo.GetByID(ctx, p.CompanyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Timezone != nil {
		c.Timezone = *req.Timezone
	}
	if req.DefaultInTime != nil {
		c.DefaultInTime = *req.DefaultInTime
	}
	if req.DefaultOutTime != nil {
		c.DefaultOutTime = *req.DefaultOutTime
	}
	if len(req.DefaultWeeklyOff) > 0 {
		c.DefaultWeeklyOff = req.DefaultWeeklyOff
	}

	if err := s.companyRepo.Update(ctx, c); err != nil {
		return company.CompanyResponse{}, err
	}

	return toResponse(c), nil
}

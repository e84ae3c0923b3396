package company

import (
	"context"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
)

// CompanyService defines business logic for company settings
type CompanyService interface {
	Get(ctx context.Context, p auth.Principal) (CompanyResponse, error)
	Update(ctx context.Context, p auth.Principal, req UpdateCompanyRequest) (CompanyResponse, error)
}

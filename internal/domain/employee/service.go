package employee

import (
	"context"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
)

// EmployeeService defines business logic for employee records
type EmployeeService interface {
	Create(ctx context.Context, p auth.Principal, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, p auth.Principal, id string) (EmployeeResponse, error)
	List(ctx context.Context, p auth.Principal, filter ListEmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, p auth.Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, p auth.Principal, id string) error
}

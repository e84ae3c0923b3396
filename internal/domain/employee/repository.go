package employee

import "context"

// EmployeeRepository defines data access for employee records. Every method
// takes companyID so cross-tenant reads are rejected at the data layer.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	List(ctx context.Context, filter ListEmployeeFilter, companyID string) ([]Employee, int64, error)
	ListActiveIDs(ctx context.Context, companyID string) ([]string, error)
	Update(ctx context.Context, e Employee) error

	// Delete removes the employee and cascades dependent payroll rows.
	Delete(ctx context.Context, id string, companyID string) error
}

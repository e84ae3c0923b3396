package payroll

import (
	"context"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
)

// PayrollService defines the monthly derivation and its persistence
type PayrollService interface {
	// Compute derives the month from attendance, approved leaves, holidays
	// and the resolved schedule. It does not persist anything; computing
	// twice over the same data yields identical output.
	Compute(ctx context.Context, p auth.Principal, employeeID, month string) (Computation, error)

	// Generate computes and upserts the summary keyed (employee_id, month).
	Generate(ctx context.Context, p auth.Principal, req GeneratePayrollRequest) (Computation, error)

	// Get returns a previously generated summary.
	Get(ctx context.Context, p auth.Principal, employeeID, month string) (*Payroll, error)
}

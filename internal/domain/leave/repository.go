package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l *Leave) error
	GetByID(ctx context.Context, companyID, id string) (*Leave, error)
	ListByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	Update(ctx context.Context, l *Leave) error

	// HasOverlap reports whether the employee already holds a pending or
	// approved request intersecting the span.
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	// ListApprovedInRange returns approved requests intersecting the span,
	// used by payroll and the auto-checkout sweeper.
	ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Leave, error)
}

package schedule

import (
	"context"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
)

// ScheduleService defines business logic for work schedule operations
type ScheduleService interface {
	// Resolve returns the effective shift definition for an employee,
	// falling back to company defaults and then built-in times. It never
	// fails: an employee always has a usable schedule.
	Resolve(ctx context.Context, companyID, employeeID string) Resolved

	Create(ctx context.Context, p auth.Principal, req CreateScheduleRequest) (ScheduleResponse, error)
	Get(ctx context.Context, p auth.Principal, id string) (ScheduleResponse, error)
	List(ctx context.Context, p auth.Principal) ([]ScheduleResponse, error)
	Deactivate(ctx context.Context, p auth.Principal, id string) error
}

package schedule

import "context"

type WorkScheduleRepository interface {
	Create(ctx context.Context, s WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string, companyID string) (WorkSchedule, error)

	// GetActiveByEmployee returns the employee's active schedule, or
	// ErrScheduleNotFound when none exists.
	GetActiveByEmployee(ctx context.Context, employeeID string, companyID string) (WorkSchedule, error)

	ListByCompany(ctx context.Context, companyID string) ([]WorkSchedule, error)

	// Deactivate closes the schedule's effective window and clears the
	// active flag.
	Deactivate(ctx context.Context, id string, companyID string) error
}

package holiday

import (
	"context"
	"time"
)

// HolidayRepository persists holidays. The *WithAttendance methods run the
// holiday write and the attendance propagation in a single transaction so a
// holiday and its stamped days never diverge.
type HolidayRepository interface {
	GetByID(ctx context.Context, companyID, id string) (*Holiday, error)
	ListByCompany(ctx context.Context, companyID string) ([]Holiday, error)
	ListOverlapping(ctx context.Context, companyID string, start, end time.Time) ([]Holiday, error)

	CreateWithAttendance(ctx context.Context, h *Holiday, employeeIDs []string) error
	// ReplaceWithAttendance updates the holiday, clears the stamped days of
	// the old range, and stamps the new one.
	ReplaceWithAttendance(ctx context.Context, old, updated *Holiday, employeeIDs []string) error
	DeleteWithAttendance(ctx context.Context, h *Holiday) error
}

package attendance

import (
	"context"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's session for the employee. A second check-in on
	// the same date fails with ErrAlreadyCheckedIn.
	CheckIn(ctx context.Context, p auth.Principal, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's open session and derives the day's figures.
	CheckOut(ctx context.Context, p auth.Principal, req CheckOutRequest) (AttendanceResponse, error)

	// ManualUpdate lets HR correct a day's punches; the day is re-derived.
	ManualUpdate(ctx context.Context, p auth.Principal, employeeID string, req ManualUpdateRequest) (AttendanceResponse, error)

	// ListMine returns the principal's own records for a date range.
	ListMine(ctx context.Context, p auth.Principal, filter ListFilter) ([]AttendanceResponse, error)

	// List returns company records, optionally filtered by employee/range.
	List(ctx context.Context, p auth.Principal, filter ListFilter) ([]AttendanceResponse, error)
}

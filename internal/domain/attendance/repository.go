package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	GetByID(ctx context.Context, companyID, id string) (*Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	ListByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Attendance, error)
	Update(ctx context.Context, att *Attendance) error

	// ListOpenInWindow returns sessions with a check-in but no check-out
	// dated within [start, end]. Rows are dated by the company-local day,
	// which can sit on either side of the UTC day, so callers sweep a
	// window rather than a single date.
	ListOpenInWindow(ctx context.Context, start, end time.Time) ([]Attendance, error)
	// CloseOpenSession sets the check-out only when the session is still
	// open, so a concurrent self check-out wins over the sweeper.
	CloseOpenSession(ctx context.Context, att *Attendance) (bool, error)

	// Holiday propagation. UpsertStatusRange stamps a derived status over
	// a date span for a set of employees; DeleteStatusRange removes the
	// stamped rows so the days fall back to their underlying state.
	UpsertStatusRange(ctx context.Context, companyID string, employeeIDs []string, start, end time.Time, status Status) error
	DeleteStatusRange(ctx context.Context, companyID string, start, end time.Time, status Status) error
}

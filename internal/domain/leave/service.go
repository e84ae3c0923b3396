package leave

import (
	"context"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// Apply files a pending request for the principal's employee record.
	Apply(ctx context.Context, p auth.Principal, req ApplyLeaveRequest) (LeaveResponse, error)

	// Decide approves or rejects a pending request. Approval stamps leave
	// days over the span; decisions are final.
	Decide(ctx context.Context, p auth.Principal, id string, req DecideLeaveRequest) (LeaveResponse, error)

	ListMine(ctx context.Context, p auth.Principal) ([]LeaveResponse, error)
	List(ctx context.Context, p auth.Principal, filter ListFilter) ([]LeaveResponse, error)
}

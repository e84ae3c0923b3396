package holiday

import (
	"context"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
)

// HolidayService defines business logic for office holidays. Every write
// propagates to the attendance days of all active employees.
type HolidayService interface {
	Create(ctx context.Context, p auth.Principal, req CreateHolidayRequest) (HolidayResponse, error)
	Update(ctx context.Context, p auth.Principal, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, p auth.Principal, id string) error
	List(ctx context.Context, p auth.Principal) ([]HolidayResponse, error)
}

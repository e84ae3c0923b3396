package holiday

import "time"

type Type string

const (
	TypePaid     Type = "paid"
	TypeUnpaid   Type = "unpaid"
	TypeNational Type = "national"
	TypeFestival Type = "festival"
)

func (t Type) Valid() bool {
	switch t {
	case TypePaid, TypeUnpaid, TypeNational, TypeFestival:
		return true
	}
	return false
}

// Paid reports whether days of this type count toward payroll. It is
// derived from the type, never stored independently.
func (t Type) Paid() bool {
	return t == TypePaid
}

// Holiday is an office-wide closure. Creating, moving, or deleting one
// rewrites the affected attendance days for every active employee.
type Holiday struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Type      Type      `json:"type"`
	IsPaid    bool      `json:"is_paid"`
	TotalDays int       `json:"total_days"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

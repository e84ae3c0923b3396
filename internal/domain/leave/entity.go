package leave

import "time"

type Type string

const (
	TypeCasual Type = "casual"
	TypeSick   Type = "sick"
	TypePaid   Type = "paid"
	TypeUnpaid Type = "unpaid"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCasual, TypeSick, TypePaid, TypeUnpaid:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Leave struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	CompanyID  string     `json:"company_id"`
	Type       Type       `json:"type"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	TotalDays  int        `json:"total_days"`
	Reason     string     `json:"reason"`
	Status     Status     `json:"status"`
	DecidedBy  *string    `json:"decided_by,omitempty"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Joined for listing.
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
}

// Covers reports whether the leave spans the given calendar date. The
// comparison is by date label so the caller's timezone cannot shift a day.
func (l *Leave) Covers(date time.Time) bool {
	d := date.Format("2006-01-02")
	return d >= l.StartDate.Format("2006-01-02") && d <= l.EndDate.Format("2006-01-02")
}

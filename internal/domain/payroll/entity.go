package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is the persisted monthly summary for one employee. Present and
// TotalWorking are fractional because a half day counts 0.5.
type Payroll struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	CompanyID      string          `json:"company_id"`
	Month          string          `json:"month"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	Present        float64         `json:"present"`
	PaidLeaves     int             `json:"paid_leaves"`
	UnpaidLeaves   int             `json:"unpaid_leaves"`
	OfficeHolidays int             `json:"office_holidays"`
	WeeklyOffs     int             `json:"weekly_offs"`
	MissingDays    int             `json:"missing_days"`
	OvertimeHours  float64         `json:"overtime_hours"`
	TotalWorking   float64         `json:"total_working"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// LedgerEntry is one day of the computed month. Field names are part of
// the export surface and stay stable.
type LedgerEntry struct {
	EmployeeCode  string  `json:"EmployeeCode"`
	Name          string  `json:"Name"`
	Date          string  `json:"Date"`
	Day           string  `json:"Day"`
	Status        string  `json:"Status"`
	CheckIn       string  `json:"CheckIn"`
	CheckOut      string  `json:"CheckOut"`
	TotalHours    float64 `json:"TotalHours"`
	OvertimeHours float64 `json:"OvertimeHours"`
}

// Computation bundles the summary and its day-by-day ledger.
type Computation struct {
	Summary Payroll       `json:"summary"`
	Ledger  []LedgerEntry `json:"ledger"`
}

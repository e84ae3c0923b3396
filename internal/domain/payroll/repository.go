package payroll

import "context"

type PayrollRepository interface {
	// Upsert inserts or overwrites the summary keyed (employee_id, month).
	Upsert(ctx context.Context, p *Payroll) error
	GetByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*Payroll, error)
	ListByCompany(ctx context.Context, companyID, month string) ([]Payroll, error)
}

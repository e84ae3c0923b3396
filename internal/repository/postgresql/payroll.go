package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/payroll"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	id, employee_id, company_id, month, period_start, period_end, present,
	paid_leaves, unpaid_leaves, office_holidays, weekly_offs, missing_days,
	overtime_hours, total_working, base_salary, generated_at
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Month, &p.PeriodStart,
		&p.PeriodEnd, &p.Present, &p.PaidLeaves, &p.UnpaidLeaves,
		&p.OfficeHolidays, &p.WeeklyOffs, &p.MissingDays, &p.OvertimeHours,
		&p.TotalWorking, &p.BaseSalary, &p.GeneratedAt,
	)
	return p, err
}

// Upsert implements payroll.PayrollRepository. Regenerating a month
// overwrites the previous summary for the same employee.
func (r *payrollRepositoryImpl) Upsert(ctx context.Context, p *payroll.Payroll) error {
	query := `
		INSERT INTO payrolls (
			employee_id, company_id, month, period_start, period_end, present,
			paid_leaves, unpaid_leaves, office_holidays, weekly_offs,
			missing_days, overtime_hours, total_working, base_salary, generated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (employee_id, month)
		DO UPDATE SET
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			present = EXCLUDED.present,
			paid_leaves = EXCLUDED.paid_leaves,
			unpaid_leaves = EXCLUDED.unpaid_leaves,
			office_holidays = EXCLUDED.office_holidays,
			weekly_offs = EXCLUDED.weekly_offs,
			missing_days = EXCLUDED.missing_days,
			overtime_hours = EXCLUDED.overtime_hours,
			total_working = EXCLUDED.total_working,
			base_salary = EXCLUDED.base_salary,
			generated_at = NOW()
		RETURNING id, generated_at
	`

	err := r.db.QueryRow(ctx, query,
		p.EmployeeID, p.CompanyID, p.Month, p.PeriodStart, p.PeriodEnd,
		p.Present, p.PaidLeaves, p.UnpaidLeaves, p.OfficeHolidays,
		p.WeeklyOffs, p.MissingDays, p.OvertimeHours, p.TotalWorking, p.BaseSalary,
	).Scan(&p.ID, &p.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert payroll: %w", err)
	}

	return nil
}

// GetByEmployeeAndMonth implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, companyID, employeeID, month string) (*payroll.Payroll, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE company_id = $1 AND employee_id = $2 AND month = $3`

	p, err := scanPayroll(r.db.QueryRow(ctx, query, companyID, employeeID, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("failed to get payroll for employee %s, %s: %w", employeeID, month, err)
	}

	return &p, nil
}

// ListByCompany implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByCompany(ctx context.Context, companyID, month string) ([]payroll.Payroll, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE company_id = $1 AND month = $2 ORDER BY employee_id`

	rows, err := r.db.Query(ctx, query, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

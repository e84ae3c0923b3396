package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/employee"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, company_id, employee_code, full_name, email, status,
	base_salary, join_date, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeCode, &e.FullName, &e.Email,
		&e.Status, &e.BaseSalary, &e.JoinDate, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (company_id, employee_code, full_name, email, status, base_salary, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(r.db.QueryRow(ctx, query,
		e.CompanyID, e.EmployeeCode, e.FullName, e.Email, e.Status, e.BaseSalary, e.JoinDate,
	))
	if err != nil {
		if isUniqueViolation(err, "employees_company_code_key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if isUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND company_id = $2`

	e, err := scanEmployee(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeeFilter, companyID string) ([]employee.Employee, int64, error) {
	where := `WHERE company_id = $1`
	args := []interface{}{companyID}

	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		where += fmt.Sprintf(` AND (full_name ILIKE $%d OR employee_code ILIKE $%d)`, len(args), len(args))
	}
	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	args = append(args, limit, (page-1)*limit)

	query := `SELECT ` + employeeColumns + ` FROM employees ` + where +
		fmt.Sprintf(` ORDER BY employee_code LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListActiveIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveIDs(ctx context.Context, companyID string) ([]string, error) {
	query := `SELECT id FROM employees WHERE company_id = $1 AND status = 'active'`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	query := `
		UPDATE employees
		SET full_name = $3, email = $4, status = $5, base_salary = $6, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := r.db.Exec(ctx, query, e.ID, e.CompanyID, e.FullName, e.Email, e.Status, e.BaseSalary)
	if err != nil {
		if isUniqueViolation(err, "employees_email_key") {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee %s: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository. Payroll rows for the
// employee go with them; attendance and leave history is kept.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM payrolls WHERE employee_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete payrolls for employee %s: %w", id, err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND company_id = $2`, id, companyID)
		if err != nil {
			return fmt.Errorf("failed to delete employee %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}
		return nil
	})
}

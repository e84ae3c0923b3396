package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/leave"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.company_id, l.type, l.start_date, l.end_date,
	l.total_days, l.reason, l.status, l.decided_by, l.decided_at,
	l.created_at, l.updated_at, e.full_name, e.employee_code
`

const leaveFrom = ` FROM leaves l JOIN employees e ON e.id = l.employee_id `

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.CompanyID, &l.Type, &l.StartDate, &l.EndDate,
		&l.TotalDays, &l.Reason, &l.Status, &l.DecidedBy, &l.DecidedAt,
		&l.CreatedAt, &l.UpdatedAt, &l.EmployeeName, &l.EmployeeCode,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l *leave.Leave) error {
	query := `
		INSERT INTO leaves (employee_id, company_id, type, start_date, end_date, total_days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		l.EmployeeID, l.CompanyID, l.Type, l.StartDate, l.EndDate,
		l.TotalDays, l.Reason, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	return nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (*leave.Leave, error) {
	query := `SELECT ` + leaveColumns + leaveFrom + ` WHERE l.id = $1 AND l.company_id = $2`

	l, err := scanLeave(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave request %s: %w", id, err)
	}

	return &l, nil
}

// ListByCompany implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByCompany(ctx context.Context, companyID string, filter leave.ListFilter) ([]leave.Leave, error) {
	where := `WHERE l.company_id = $1`
	args := []interface{}{companyID}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		where += fmt.Sprintf(` AND l.employee_id = $%d`, len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND l.status = $%d`, len(args))
	}
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate)
		where += fmt.Sprintf(` AND l.end_date >= $%d`, len(args))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate)
		where += fmt.Sprintf(` AND l.start_date <= $%d`, len(args))
	}

	query := `SELECT ` + leaveColumns + leaveFrom + where + ` ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	query := `SELECT ` + leaveColumns + leaveFrom + ` WHERE l.employee_id = $1 ORDER BY l.start_date DESC`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, l *leave.Leave) error {
	query := `
		UPDATE leaves
		SET status = $2, decided_by = $3, decided_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, l.ID, l.Status, l.DecidedBy, l.DecidedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave request %s: %w", l.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// HasOverlap implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM leaves
			WHERE employee_id = $1 AND status IN ('pending', 'approved')
			  AND start_date <= $3 AND end_date >= $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return exists, nil
}

// ListApprovedInRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveColumns + leaveFrom + `
		WHERE l.employee_id = $1 AND l.status = 'approved'
		  AND l.start_date <= $3 AND l.end_date >= $2
		ORDER BY l.start_date
	`

	rows, err := r.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var records []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		records = append(records, l)
	}
	return records, rows.Err()
}

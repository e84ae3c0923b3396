package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.company_id, a.date, a.check_in, a.check_out,
	a.status, a.total_minutes, a.total_hours, a.late_minutes,
	a.early_leave_minutes, a.overtime_minutes, a.overtime_hours,
	a.log_type, a.auto_checkout, a.created_at, a.updated_at,
	e.full_name, e.employee_code
`

const attendanceFrom = ` FROM attendances a JOIN employees e ON e.id = a.employee_id `

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.CompanyID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.Status, &a.TotalMinutes, &a.TotalHours, &a.LateMinutes,
		&a.EarlyLeaveMinutes, &a.OvertimeMinutes, &a.OvertimeHours,
		&a.LogType, &a.AutoCheckout, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.EmployeeCode,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) turns a second check-in into ErrAlreadyCheckedIn.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att *attendance.Attendance) error {
	query := `
		INSERT INTO attendances (
			employee_id, company_id, date, check_in, check_out, status,
			total_minutes, total_hours, late_minutes, early_leave_minutes,
			overtime_minutes, overtime_hours, log_type, auto_checkout
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		att.EmployeeID, att.CompanyID, att.Date, att.CheckIn, att.CheckOut,
		att.Status, att.TotalMinutes, att.TotalHours, att.LateMinutes,
		att.EarlyLeaveMinutes, att.OvertimeMinutes, att.OvertimeHours,
		att.LogType, att.AutoCheckout,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "attendances_employee_date_key") {
			return attendance.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	return nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (*attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + ` WHERE a.id = $1 AND a.company_id = $2`

	a, err := scanAttendance(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance %s: %w", id, err)
	}

	return &a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + ` WHERE a.employee_id = $1 AND a.date = $2`

	a, err := scanAttendance(r.db.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w",
			employeeID, date.Format("2006-01-02"), err)
	}

	return &a, nil
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := r.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByCompany implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByCompany(ctx context.Context, companyID string, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	where := `WHERE a.company_id = $1`
	args := []interface{}{companyID}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		where += fmt.Sprintf(` AND a.employee_id = $%d`, len(args))
	}
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate)
		where += fmt.Sprintf(` AND a.date >= $%d`, len(args))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate)
		where += fmt.Sprintf(` AND a.date <= $%d`, len(args))
	}

	query := `SELECT ` + attendanceColumns + attendanceFrom + where + ` ORDER BY a.date DESC, e.employee_code`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att *attendance.Attendance) error {
	query := `
		UPDATE attendances
		SET check_in = $2, check_out = $3, status = $4, total_minutes = $5,
		    total_hours = $6, late_minutes = $7, early_leave_minutes = $8,
		    overtime_minutes = $9, overtime_hours = $10, log_type = $11,
		    auto_checkout = $12, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		att.ID, att.CheckIn, att.CheckOut, att.Status, att.TotalMinutes,
		att.TotalHours, att.LateMinutes, att.EarlyLeaveMinutes,
		att.OvertimeMinutes, att.OvertimeHours, att.LogType, att.AutoCheckout,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance %s: %w", att.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListOpenInWindow implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListOpenInWindow(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.date BETWEEN $1 AND $2 AND a.check_in IS NOT NULL AND a.check_out IS NULL
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendance sessions: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// CloseOpenSession implements attendance.AttendanceRepository. The
// clock_out IS NULL guard makes concurrent sweeps and a racing self
// check-out settle on whichever write lands first.
func (r *attendanceRepositoryImpl) CloseOpenSession(ctx context.Context, att *attendance.Attendance) (bool, error) {
	query := `
		UPDATE attendances
		SET check_out = $2, status = $3, total_minutes = $4, total_hours = $5,
		    late_minutes = $6, early_leave_minutes = $7, overtime_minutes = $8,
		    overtime_hours = $9, log_type = $10, auto_checkout = $11, updated_at = NOW()
		WHERE id = $1 AND check_out IS NULL
	`

	tag, err := r.db.Exec(ctx, query,
		att.ID, att.CheckOut, att.Status, att.TotalMinutes, att.TotalHours,
		att.LateMinutes, att.EarlyLeaveMinutes, att.OvertimeMinutes,
		att.OvertimeHours, att.LogType, att.AutoCheckout,
	)
	if err != nil {
		return false, fmt.Errorf("failed to close attendance session %s: %w", att.ID, err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpsertStatusRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpsertStatusRange(ctx context.Context, companyID string, employeeIDs []string, start, end time.Time, status attendance.Status) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		return upsertStatusRange(ctx, tx, companyID, employeeIDs, start, end, status)
	})
}

// DeleteStatusRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteStatusRange(ctx context.Context, companyID string, start, end time.Time, status attendance.Status) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		return deleteStatusRange(ctx, tx, companyID, start, end, status)
	})
}

// upsertStatusRange stamps a system status over every day of the span for
// the given employees, leaving real punches in place. Shared with the
// holiday repository so propagation can join a larger transaction.
func upsertStatusRange(ctx context.Context, q database.Querier, companyID string, employeeIDs []string, start, end time.Time, status attendance.Status) error {
	query := `
		INSERT INTO attendances (employee_id, company_id, date, status, log_type)
		SELECT emp, $1, day::date, $4, 'system'
		FROM unnest($5::uuid[]) AS emp,
		     generate_series($2::date, $3::date, interval '1 day') AS day
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		WHERE attendances.check_in IS NULL
	`

	if _, err := q.Exec(ctx, query, companyID, start, end, status, employeeIDs); err != nil {
		return fmt.Errorf("failed to stamp %s days: %w", status, err)
	}
	return nil
}

// deleteStatusRange removes stamped rows without punches so the days fall
// back to their underlying state.
func deleteStatusRange(ctx context.Context, q database.Querier, companyID string, start, end time.Time, status attendance.Status) error {
	query := `
		DELETE FROM attendances
		WHERE company_id = $1 AND date BETWEEN $2 AND $3
		  AND status = $4 AND check_in IS NULL AND log_type = 'system'
	`

	if _, err := q.Exec(ctx, query, companyID, start, end, status); err != nil {
		return fmt.Errorf("failed to clear %s days: %w", status, err)
	}
	return nil
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

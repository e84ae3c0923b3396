package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/schedule"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

const workScheduleColumns = `
	id, company_id, employee_id, name, in_time, out_time, weekly_off,
	grace_period_minutes, shift_type, effective_from, effective_to,
	is_active, created_at, updated_at
`

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var s schedule.WorkSchedule
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.EmployeeID, &s.Name, &s.InTime, &s.OutTime,
		&s.WeeklyOff, &s.GracePeriodMinutes, &s.ShiftType, &s.EffectiveFrom,
		&s.EffectiveTo, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements schedule.WorkScheduleRepository. The partial unique
// index on (employee_id) WHERE is_active rejects a second active schedule.
func (r *workScheduleRepositoryImpl) Create(ctx context.Context, s schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	query := `
		INSERT INTO work_schedules (
			company_id, employee_id, name, in_time, out_time, weekly_off,
			grace_period_minutes, shift_type, effective_from, effective_to, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + workScheduleColumns

	created, err := scanWorkSchedule(r.db.QueryRow(ctx, query,
		s.CompanyID, s.EmployeeID, s.Name, s.InTime, s.OutTime, s.WeeklyOff,
		s.GracePeriodMinutes, s.ShiftType, s.EffectiveFrom, s.EffectiveTo, s.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err, "work_schedules_active_employee_key") {
			return schedule.WorkSchedule{}, schedule.ErrActiveScheduleExists
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return created, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (schedule.WorkSchedule, error) {
	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1 AND company_id = $2`

	s, err := scanWorkSchedule(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule %s: %w", id, err)
	}

	return s, nil
}

// GetActiveByEmployee implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string, companyID string) (schedule.WorkSchedule, error) {
	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE employee_id = $1 AND company_id = $2 AND is_active
		ORDER BY effective_from DESC
		LIMIT 1
	`

	s, err := scanWorkSchedule(r.db.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get active schedule for employee %s: %w", employeeID, err)
	}

	return s, nil
}

// ListByCompany implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]schedule.WorkSchedule, error) {
	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE company_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		s, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule row: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// Deactivate implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Deactivate(ctx context.Context, id string, companyID string) error {
	query := `
		UPDATE work_schedules
		SET is_active = FALSE, effective_to = CURRENT_DATE, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND is_active
	`

	tag, err := r.db.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate work schedule %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

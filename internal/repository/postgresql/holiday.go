package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/attendance"
	"github.com/opsdesk-hr/backoffice-go/internal/domain/holiday"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `
	id, company_id, title, start_date, end_date, type, is_paid, total_days,
	created_at, updated_at
`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID, &h.CompanyID, &h.Title, &h.StartDate, &h.EndDate,
		&h.Type, &h.IsPaid, &h.TotalDays, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (*holiday.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE id = $1 AND company_id = $2`

	h, err := scanHoliday(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, holiday.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday %s: %w", id, err)
	}

	return &h, nil
}

// ListByCompany implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]holiday.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE company_id = $1 ORDER BY start_date`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// ListOverlapping implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListOverlapping(ctx context.Context, companyID string, start, end time.Time) ([]holiday.Holiday, error) {
	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE company_id = $1 AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// CreateWithAttendance implements holiday.HolidayRepository. The holiday
// row and the stamped attendance days commit or roll back together.
func (r *holidayRepositoryImpl) CreateWithAttendance(ctx context.Context, h *holiday.Holiday, employeeIDs []string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO holidays (company_id, title, start_date, end_date, type, is_paid, total_days)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			h.CompanyID, h.Title, h.StartDate, h.EndDate, h.Type, h.IsPaid, h.TotalDays,
		).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err, "holidays_company_range_key") {
				return holiday.ErrHolidayExists
			}
			return fmt.Errorf("failed to create holiday: %w", err)
		}

		return upsertStatusRange(ctx, tx, h.CompanyID, employeeIDs, h.StartDate, h.EndDate, attendance.StatusHoliday)
	})
}

// ReplaceWithAttendance implements holiday.HolidayRepository. Clears the
// old range before stamping the new one so a shrunk or moved holiday never
// leaves orphaned holiday days behind.
func (r *holidayRepositoryImpl) ReplaceWithAttendance(ctx context.Context, old, updated *holiday.Holiday, employeeIDs []string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE holidays
			SET title = $2, start_date = $3, end_date = $4, type = $5,
			    is_paid = $6, total_days = $7, updated_at = NOW()
			WHERE id = $1
		`

		tag, err := tx.Exec(ctx, query,
			updated.ID, updated.Title, updated.StartDate, updated.EndDate,
			updated.Type, updated.IsPaid, updated.TotalDays,
		)
		if err != nil {
			if isUniqueViolation(err, "holidays_company_range_key") {
				return holiday.ErrHolidayExists
			}
			return fmt.Errorf("failed to update holiday %s: %w", updated.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return holiday.ErrHolidayNotFound
		}

		if err := deleteStatusRange(ctx, tx, old.CompanyID, old.StartDate, old.EndDate, attendance.StatusHoliday); err != nil {
			return err
		}
		return upsertStatusRange(ctx, tx, updated.CompanyID, employeeIDs, updated.StartDate, updated.EndDate, attendance.StatusHoliday)
	})
}

// DeleteWithAttendance implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) DeleteWithAttendance(ctx context.Context, h *holiday.Holiday) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM holidays WHERE id = $1 AND company_id = $2`, h.ID, h.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to delete holiday %s: %w", h.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return holiday.ErrHolidayNotFound
		}

		return deleteStatusRange(ctx, tx, h.CompanyID, h.StartDate, h.EndDate, attendance.StatusHoliday)
	})
}

func collectHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var records []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		records = append(records, h)
	}
	return records, rows.Err()
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/company"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	query := `
		SELECT id, name, timezone, default_in_time, default_out_time,
		       default_weekly_off, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Timezone, &c.DefaultInTime, &c.DefaultOutTime,
		&c.DefaultWeeklyOff, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company %s: %w", id, err)
	}

	return c, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, c company.Company) error {
	query := `
		UPDATE companies
		SET name = $2, timezone = $3, default_in_time = $4,
		    default_out_time = $5, default_weekly_off = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Timezone, c.DefaultInTime, c.DefaultOutTime, c.DefaultWeeklyOff,
	)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

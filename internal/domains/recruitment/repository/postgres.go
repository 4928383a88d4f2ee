package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/recruitment"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
)

const settingsColumns = `id, is_open, open_date, close_date, description, requirements, benefits,
	form_url, sheet_url, faqs, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) recruitment.Repository {
	return &postgresRepository{pool: pool}
}

func scanSettings(row pgx.Row) (*recruitment.Settings, error) {
	var s recruitment.Settings
	err := row.Scan(
		&s.ID, &s.IsOpen, &s.OpenDate, &s.CloseDate, &s.Description, &s.Requirements, &s.Benefits,
		&s.FormURL, &s.SheetURL, &s.FAQs, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, database.Translate(err)
	}
	if s.FAQs == nil {
		s.FAQs = []recruitment.FAQ{}
	}
	return &s, nil
}

func (r *postgresRepository) GetCurrent(ctx context.Context) (*recruitment.Settings, error) {
	return scanSettings(r.pool.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM recruitment_settings ORDER BY created_at DESC, id DESC LIMIT 1`))
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*recruitment.Settings, error) {
	return scanSettings(r.pool.QueryRow(ctx, `SELECT `+settingsColumns+` FROM recruitment_settings WHERE id = $1`, id))
}

func (r *postgresRepository) Create(ctx context.Context, s *recruitment.Settings) (*recruitment.Settings, error) {
	return scanSettings(r.pool.QueryRow(ctx, `
		INSERT INTO recruitment_settings
			(is_open, open_date, close_date, description, requirements, benefits, form_url, sheet_url, faqs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+settingsColumns,
		s.IsOpen, s.OpenDate, s.CloseDate, s.Description, s.Requirements, s.Benefits, s.FormURL, s.SheetURL, s.FAQs,
	))
}

func (r *postgresRepository) Update(ctx context.Context, s *recruitment.Settings) (*recruitment.Settings, error) {
	return scanSettings(r.pool.QueryRow(ctx, `
		UPDATE recruitment_settings
		SET is_open = $2, open_date = $3, close_date = $4, description = $5, requirements = $6,
		    benefits = $7, form_url = $8, sheet_url = $9, faqs = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING `+settingsColumns,
		s.ID, s.IsOpen, s.OpenDate, s.CloseDate, s.Description, s.Requirements, s.Benefits, s.FormURL, s.SheetURL, s.FAQs,
	))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recruitment_settings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recruitment settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM recruitment_settings`).Scan(&n)
	return n, err
}

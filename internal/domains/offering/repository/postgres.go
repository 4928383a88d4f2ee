package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/offering"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
)

const offeringColumns = `id, title, description, sector, icon, sort_order, is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) offering.Repository {
	return &postgresRepository{pool: pool}
}

func scanOffering(row pgx.Row) (*offering.Offering, error) {
	var o offering.Offering
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.Sector, &o.Icon, &o.Order, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, database.Translate(err)
	}
	return &o, nil
}

func (r *postgresRepository) List(ctx context.Context, activeOnly bool) ([]offering.Offering, error) {
	query := `SELECT ` + offeringColumns + ` FROM services WHERE ($1 = FALSE OR is_active) ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	offerings := make([]offering.Offering, 0)
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		offerings = append(offerings, *o)
	}
	return offerings, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	return scanOffering(r.pool.QueryRow(ctx, `SELECT `+offeringColumns+` FROM services WHERE id = $1`, id))
}

func (r *postgresRepository) Create(ctx context.Context, o *offering.Offering) (*offering.Offering, error) {
	return scanOffering(r.pool.QueryRow(ctx, `
		INSERT INTO services (title, description, sector, icon, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+offeringColumns,
		o.Title, o.Description, o.Sector, o.Icon, o.Order, o.IsActive,
	))
}

func (r *postgresRepository) Update(ctx context.Context, o *offering.Offering) (*offering.Offering, error) {
	return scanOffering(r.pool.QueryRow(ctx, `
		UPDATE services
		SET title = $2, description = $3, sector = $4, icon = $5, sort_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING `+offeringColumns,
		o.ID, o.Title, o.Description, o.Sector, o.Icon, o.Order, o.IsActive,
	))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}

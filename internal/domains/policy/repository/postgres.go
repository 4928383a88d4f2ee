package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/policy"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
)

const policyColumns = `id, type, title, content, is_active, version, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) policy.Repository {
	return &postgresRepository{pool: pool}
}

func scanPolicy(row pgx.Row) (*policy.Policy, error) {
	var p policy.Policy
	err := row.Scan(&p.ID, &p.Type, &p.Title, &p.Content, &p.IsActive, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, database.Translate(err)
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]policy.Policy, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+policyColumns+` FROM policies ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer rows.Close()

	policies := make([]policy.Policy, 0)
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan policy: %w", err)
		}
		policies = append(policies, *p)
	}
	return policies, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*policy.Policy, error) {
	return scanPolicy(r.pool.QueryRow(ctx, `SELECT `+policyColumns+` FROM policies WHERE id = $1`, id))
}

func (r *postgresRepository) GetActiveByType(ctx context.Context, policyType string) (*policy.Policy, error) {
	return scanPolicy(r.pool.QueryRow(ctx,
		`SELECT `+policyColumns+` FROM policies WHERE type = $1 AND is_active`, policyType))
}

func (r *postgresRepository) Create(ctx context.Context, p *policy.Policy) (*policy.Policy, error) {
	return scanPolicy(r.pool.QueryRow(ctx, `
		INSERT INTO policies (type, title, content, is_active, version)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+policyColumns,
		p.Type, p.Title, p.Content, p.IsActive, p.Version,
	))
}

func (r *postgresRepository) Update(ctx context.Context, p *policy.Policy) (*policy.Policy, error) {
	return scanPolicy(r.pool.QueryRow(ctx, `
		UPDATE policies
		SET type = $2, title = $3, content = $4, is_active = $5, version = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING `+policyColumns,
		p.ID, p.Type, p.Title, p.Content, p.IsActive, p.Version,
	))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM policies`).Scan(&n)
	return n, err
}

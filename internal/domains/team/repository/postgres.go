package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/team"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
)

const memberColumns = `id, name, role, image, description, sort_order, is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) team.Repository {
	return &postgresRepository{pool: pool}
}

func scanMember(row pgx.Row) (*team.Member, error) {
	var m team.Member
	if err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Image, &m.Description, &m.Order, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, database.Translate(err)
	}
	return &m, nil
}

func (r *postgresRepository) List(ctx context.Context, activeOnly bool) ([]team.Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+memberColumns+`
		FROM team_members
		WHERE ($1 = FALSE OR is_active)
		ORDER BY sort_order ASC, created_at ASC`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	members := make([]team.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*team.Member, error) {
	return scanMember(r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM team_members WHERE id = $1`, id))
}

func (r *postgresRepository) Create(ctx context.Context, m *team.Member) (*team.Member, error) {
	return scanMember(r.pool.QueryRow(ctx, `
		INSERT INTO team_members (name, role, image, description, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+memberColumns,
		m.Name, m.Role, m.Image, m.Description, m.Order, m.IsActive,
	))
}

func (r *postgresRepository) Update(ctx context.Context, m *team.Member) (*team.Member, error) {
	return scanMember(r.pool.QueryRow(ctx, `
		UPDATE team_members
		SET name = $2, role = $3, image = $4, description = $5, sort_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING `+memberColumns,
		m.ID, m.Name, m.Role, m.Image, m.Description, m.Order, m.IsActive,
	))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&n)
	return n, err
}

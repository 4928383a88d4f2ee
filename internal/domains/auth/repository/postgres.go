package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/auth"
	"orgsite-backend/internal/infrastructure/database"
)

const adminColumns = `id, email, password_hash, name, role, is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) auth.Repository {
	return &postgresRepository{pool: pool}
}

func scanAdmin(row pgx.Row) (*auth.AdminUser, error) {
	var u auth.AdminUser
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, database.Translate(err)
	}
	return &u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*auth.AdminUser, error) {
	return scanAdmin(r.pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE email = $1`, email))
}

func (r *postgresRepository) Create(ctx context.Context, u *auth.AdminUser) (*auth.AdminUser, error) {
	return scanAdmin(r.pool.QueryRow(ctx, `
		INSERT INTO admin_users (email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+adminColumns,
		u.Email, u.PasswordHash, u.Name, u.Role, u.IsActive,
	))
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/project"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
)

const projectColumns = `id, title, description, image, tags, client, year, sort_order, is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) project.Repository {
	return &postgresRepository{pool: pool}
}

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, &p.Tags, &p.Client, &p.Year,
		&p.Order, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, database.Translate(err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context, activeOnly bool) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

func (r *postgresRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	query := `
		INSERT INTO projects (title, description, image, tags, client, year, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + projectColumns

	return scanProject(r.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.Image, p.Tags, p.Client, p.Year, p.Order, p.IsActive,
	))
}

func (r *postgresRepository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	query := `
		UPDATE projects
		SET title = $2, description = $3, image = $4, tags = $5, client = $6, year = $7,
		    sort_order = $8, is_active = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + projectColumns

	return scanProject(r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Description, p.Image, p.Tags, p.Client, p.Year, p.Order, p.IsActive,
	))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	return n, err
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/homesection"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
	pkgdb "orgsite-backend/pkg/database"
)

const sectionColumns = `id, name, title, subtitle, description, is_active, sort_order, config, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) homesection.Repository {
	return &postgresRepository{pool: pool}
}

func sectionDest(s *homesection.Section) []interface{} {
	return []interface{}{
		&s.ID, &s.Name, &s.Title, &s.Subtitle, &s.Description,
		&s.IsActive, &s.Order, &s.Config, &s.CreatedAt, &s.UpdatedAt,
	}
}

func scanSection(row pgx.Row) (*homesection.Section, error) {
	var s homesection.Section
	if err := row.Scan(sectionDest(&s)...); err != nil {
		return nil, database.Translate(err)
	}
	return &s, nil
}

func (r *postgresRepository) List(ctx context.Context, activeOnly bool) ([]homesection.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM home_sections`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list home sections: %w", err)
	}
	defer rows.Close()

	sections := make([]homesection.Section, 0)
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan home section: %w", err)
		}
		sections = append(sections, *s)
	}
	return sections, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*homesection.Section, error) {
	return scanSection(r.pool.QueryRow(ctx, `SELECT `+sectionColumns+` FROM home_sections WHERE id = $1`, id))
}

func (r *postgresRepository) Create(ctx context.Context, s *homesection.Section) (*homesection.Section, error) {
	query := `
		INSERT INTO home_sections (name, title, subtitle, description, is_active, sort_order, config)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + sectionColumns

	return scanSection(r.pool.QueryRow(ctx, query,
		s.Name, s.Title, s.Subtitle, s.Description, s.IsActive, s.Order, s.Config))
}

func (r *postgresRepository) Update(ctx context.Context, s *homesection.Section) (*homesection.Section, error) {
	query := `
		UPDATE home_sections
		SET name = $2, title = $3, subtitle = $4, description = $5,
		    is_active = $6, sort_order = $7, config = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + sectionColumns

	return scanSection(r.pool.QueryRow(ctx, query,
		s.ID, s.Name, s.Title, s.Subtitle, s.Description, s.IsActive, s.Order, s.Config))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM home_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete home section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM home_sections`).Scan(&n)
	return n, err
}

// xmax = 0 holds only for freshly inserted tuples, which tells an insert
// apart from the ON CONFLICT update branch.
const upsertQuery = `
	INSERT INTO home_sections (name, title, subtitle, description, is_active, sort_order, config)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (name) DO UPDATE SET
		title = EXCLUDED.title,
		subtitle = EXCLUDED.subtitle,
		description = EXCLUDED.description,
		is_active = EXCLUDED.is_active,
		sort_order = EXCLUDED.sort_order,
		config = EXCLUDED.config,
		updated_at = NOW()
	RETURNING ` + sectionColumns + `, (xmax = 0) AS inserted`

func (r *postgresRepository) UpsertByName(ctx context.Context, sections []homesection.Section) (*homesection.UpsertResult, error) {
	return pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*homesection.UpsertResult, error) {
		result := &homesection.UpsertResult{Sections: make([]homesection.Section, 0, len(sections))}

		for i := range sections {
			s := sections[i]
			var saved homesection.Section
			var inserted bool
			err := tx.QueryRow(ctx, upsertQuery,
				s.Name, s.Title, s.Subtitle, s.Description, s.IsActive, s.Order, s.Config,
			).Scan(append(sectionDest(&saved), &inserted)...)
			if err != nil {
				return nil, fmt.Errorf("upsert home section %q: %w", s.Name, database.Translate(err))
			}

			if inserted {
				result.Inserted++
			} else {
				result.Updated++
			}
			result.Sections = append(result.Sections, saved)
		}
		return result, nil
	})
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/newsletter"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
)

const subscriberColumns = `id, email, name, is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) newsletter.Repository {
	return &postgresRepository{pool: pool}
}

func scanSubscriber(row pgx.Row) (*newsletter.Subscriber, error) {
	var s newsletter.Subscriber
	if err := row.Scan(&s.ID, &s.Email, &s.Name, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, database.Translate(err)
	}
	return &s, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]newsletter.Subscriber, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+subscriberColumns+` FROM newsletter_subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := make([]newsletter.Subscriber, 0)
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subscribers = append(subscribers, *s)
	}
	return subscribers, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*newsletter.Subscriber, error) {
	return scanSubscriber(r.pool.QueryRow(ctx,
		`SELECT `+subscriberColumns+` FROM newsletter_subscribers WHERE id = $1`, id))
}

func (r *postgresRepository) Create(ctx context.Context, s *newsletter.Subscriber) (*newsletter.Subscriber, error) {
	return scanSubscriber(r.pool.QueryRow(ctx, `
		INSERT INTO newsletter_subscribers (email, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING `+subscriberColumns,
		s.Email, s.Name, s.IsActive,
	))
}

func (r *postgresRepository) Deactivate(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	return scanSubscriber(r.pool.QueryRow(ctx, `
		UPDATE newsletter_subscribers
		SET is_active = FALSE, updated_at = NOW()
		WHERE email = $1
		RETURNING `+subscriberColumns, email))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM newsletter_subscribers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&n)
	return n, err
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/contact"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
)

const contactColumns = `id, type, value, label, sort_order, is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

func scanContact(row pgx.Row) (*contact.Contact, error) {
	var c contact.Contact
	err := row.Scan(&c.ID, &c.Type, &c.Value, &c.Label, &c.Order, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, database.Translate(err)
	}
	return &c, nil
}

func (r *postgresRepository) List(ctx context.Context, activeOnly bool) ([]contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]contact.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	return scanContact(r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
}

func (r *postgresRepository) Create(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	query := `
		INSERT INTO contacts (type, value, label, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + contactColumns

	return scanContact(r.pool.QueryRow(ctx, query, c.Type, c.Value, c.Label, c.Order, c.IsActive))
}

func (r *postgresRepository) Update(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	query := `
		UPDATE contacts
		SET type = $2, value = $3, label = $4, sort_order = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contactColumns

	return scanContact(r.pool.QueryRow(ctx, query, c.ID, c.Type, c.Value, c.Label, c.Order, c.IsActive))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n)
	return n, err
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/blog"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/shared/apperror"
)

const postColumns = `id, title, slug, content, excerpt, featured_image, tags, is_published, published_at, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

func scanPost(row pgx.Row) (*blog.Post, error) {
	var p blog.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.FeaturedImage, &p.Tags,
		&p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, database.Translate(err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter blog.ListFilter) ([]blog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts`
	if filter.PublishedOnly {
		query += ` WHERE is_published`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]blog.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	return scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id))
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE slug = $1`, slug))
}

// Create relies on blog_posts_slug_key for slug uniqueness.
func (r *postgresRepository) Create(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	query := `
		INSERT INTO blog_posts (title, slug, content, excerpt, featured_image, tags, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + postColumns

	return scanPost(r.pool.QueryRow(ctx, query,
		p.Title, p.Slug, p.Content, p.Excerpt, p.FeaturedImage, p.Tags, p.IsPublished, p.PublishedAt,
	))
}

func (r *postgresRepository) Update(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, featured_image = $6, tags = $7,
		    is_published = $8, published_at = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + postColumns

	return scanPost(r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.FeaturedImage, p.Tags, p.IsPublished, p.PublishedAt,
	))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrRecordNotFound
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&n)
	return n, err
}

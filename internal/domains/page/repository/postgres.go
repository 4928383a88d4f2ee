package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"orgsite-backend/internal/domains/page"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) page.Repository {
	return &postgresRepository{pool: pool}
}

const countsQuery = `
	SELECT
		(SELECT COUNT(*) FROM blog_posts),
		(SELECT COUNT(*) FROM blog_posts WHERE is_published),
		(SELECT COUNT(*) FROM contacts),
		(SELECT COUNT(*) FROM projects),
		(SELECT COUNT(*) FROM services),
		(SELECT COUNT(*) FROM team_members),
		(SELECT COUNT(*) FROM policies),
		(SELECT COUNT(*) FROM newsletter_subscribers),
		(SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active),
		(SELECT COUNT(*) FROM home_sections)`

func (r *postgresRepository) Counts(ctx context.Context) (*page.Counts, error) {
	var c page.Counts
	err := r.pool.QueryRow(ctx, countsQuery).Scan(
		&c.BlogPosts, &c.PublishedPosts, &c.Contacts, &c.Projects, &c.Services,
		&c.TeamMembers, &c.Policies, &c.Subscribers, &c.ActiveSubscribers, &c.HomeSections,
	)
	if err != nil {
		return nil, fmt.Errorf("count dashboard rows: %w", err)
	}
	return &c, nil
}

package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository - blog post persistence.
// Create/Update return apperror.ErrDuplicate when the slug is taken.
type Repository interface {
	// List returns posts newest first.
	List(ctx context.Context, filter ListFilter) ([]Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Create(ctx context.Context, p *Post) (*Post, error)
	Update(ctx context.Context, p *Post) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

package blog

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	// GetPublishedBySlug renders the Markdown content; drafts are not found.
	GetPublishedBySlug(ctx context.Context, slug string) (*PostDetail, error)
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Renderer turns Markdown into HTML.
type Renderer interface {
	Render(source string) (string, error)
}

package project

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, p *Project) (*Project, error)
	Update(ctx context.Context, p *Project) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

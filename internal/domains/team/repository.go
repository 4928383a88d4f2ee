package team

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	Create(ctx context.Context, m *Member) (*Member, error)
	Update(ctx context.Context, m *Member) (*Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

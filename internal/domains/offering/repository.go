package offering

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Offering, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Offering, error)
	Create(ctx context.Context, o *Offering) (*Offering, error)
	Update(ctx context.Context, o *Offering) (*Offering, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

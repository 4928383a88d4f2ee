package recruitment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// GetCurrent returns the most recently created row.
	GetCurrent(ctx context.Context) (*Settings, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Settings, error)
	Create(ctx context.Context, s *Settings) (*Settings, error)
	Update(ctx context.Context, s *Settings) (*Settings, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

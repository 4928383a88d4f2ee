package homesection

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns sections ordered by order ASC, then creation time.
	List(ctx context.Context, activeOnly bool) ([]Section, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Section, error)
	Create(ctx context.Context, s *Section) (*Section, error)
	Update(ctx context.Context, s *Section) (*Section, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// UpsertByName writes every section keyed by name, in slice order, inside
	// one transaction. Nothing is written when any element fails.
	UpsertByName(ctx context.Context, sections []Section) (*UpsertResult, error)
}

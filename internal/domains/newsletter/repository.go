package newsletter

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns subscribers newest first.
	List(ctx context.Context) ([]Subscriber, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Subscriber, error)
	// Create fails with apperror.ErrDuplicate when the email exists.
	Create(ctx context.Context, s *Subscriber) (*Subscriber, error)
	Deactivate(ctx context.Context, email string) (*Subscriber, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

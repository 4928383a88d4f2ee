package contact

import (
	"context"

	"github.com/google/uuid"
)

// Repository - data access for contacts.
// Missing rows are reported as apperror.ErrRecordNotFound.
type Repository interface {
	// List returns contacts ordered by order ASC, then creation time.
	List(ctx context.Context, activeOnly bool) ([]Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	Create(ctx context.Context, c *Contact) (*Contact, error)
	Update(ctx context.Context, c *Contact) (*Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

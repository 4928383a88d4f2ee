package policy

import (
	"context"

	"github.com/google/uuid"
)

// Repository - policies persistence.
// Writes that would leave two active policies of one type fail with
// apperror.ErrDuplicate (partial unique index policies_active_type_key).
type Repository interface {
	// List returns policies most recently updated first.
	List(ctx context.Context) ([]Policy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Policy, error)
	GetActiveByType(ctx context.Context, policyType string) (*Policy, error)
	Create(ctx context.Context, p *Policy) (*Policy, error)
	Update(ctx context.Context, p *Policy) (*Policy, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

package policy

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Policy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Policy, error)
	GetActive(ctx context.Context, policyType string) (*Policy, error)
	Create(ctx context.Context, req *CreatePolicyRequest) (*Policy, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePolicyRequest) (*Policy, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

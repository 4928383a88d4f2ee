package offering

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Offering, error)
	ListActive(ctx context.Context) ([]Offering, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Offering, error)
	Create(ctx context.Context, req *CreateOfferingRequest) (*Offering, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateOfferingRequest) (*Offering, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

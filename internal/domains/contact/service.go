package contact

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Contact, error)
	ListActive(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	Create(ctx context.Context, req *CreateContactRequest) (*Contact, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateContactRequest) (*Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package homesection

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Section, error)
	ListActive(ctx context.Context) ([]Section, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Section, error)
	Create(ctx context.Context, req *CreateSectionRequest) (*Section, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateSectionRequest) (*Section, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpsert(ctx context.Context, reqs []CreateSectionRequest) (*UpsertResult, error)
}

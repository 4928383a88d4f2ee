package team

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Member, error)
	ListActive(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	Create(ctx context.Context, req *CreateMemberRequest) (*Member, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

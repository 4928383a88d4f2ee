package project

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Project, error)
	ListActive(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, req *CreateProjectRequest) (*Project, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package recruitment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	GetCurrent(ctx context.Context) (*Settings, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Settings, error)
	Create(ctx context.Context, req *CreateSettingsRequest) (*Settings, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateSettingsRequest) (*Settings, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// SyncWindow opens or closes the current settings from their date
	// window. Returns true when isOpen changed.
	SyncWindow(ctx context.Context, now time.Time) (bool, error)
}

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/domains/recruitment"
)

// SyncWindowHandler flips the current recruitment settings open or closed
// once their date window starts or ends.
type SyncWindowHandler struct {
	service recruitment.Service
	now     func() time.Time
}

func NewSyncWindowHandler(service recruitment.Service) *SyncWindowHandler {
	return &SyncWindowHandler{service: service, now: time.Now}
}

func (h *SyncWindowHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	changed, err := h.service.SyncWindow(ctx, h.now())
	if err != nil {
		log.Error().Err(err).Msg("Failed to sync recruitment window")
		return fmt.Errorf("sync recruitment window: %w", err)
	}
	if changed {
		log.Info().Msg("Recruitment window state updated")
	}
	return nil
}

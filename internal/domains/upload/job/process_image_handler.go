package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/domains/upload"
	"orgsite-backend/internal/shared"
)

// ProcessImageHandler generates resized variants of an uploaded image.
type ProcessImageHandler struct {
	service upload.Service
}

func NewProcessImageHandler(service upload.Service) *ProcessImageHandler {
	return &ProcessImageHandler{service: service}
}

func (h *ProcessImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ProcessUploadImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ProcessUploadImage payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	if payload.ObjectKey == "" {
		return fmt.Errorf("empty object key: %w", asynq.SkipRetry)
	}

	log.Info().Str("key", payload.ObjectKey).Msg("Processing upload image variants")

	if err := h.service.ProcessVariants(ctx, payload.ObjectKey); err != nil {
		log.Error().Err(err).Str("key", payload.ObjectKey).Msg("Failed to process image")
		return fmt.Errorf("process image: %w", err)
	}
	return nil
}

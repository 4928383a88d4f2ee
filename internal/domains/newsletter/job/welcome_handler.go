package job

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/infrastructure/email"
	"orgsite-backend/internal/shared"
)

// WelcomeHandler sends the welcome mail for a fresh subscription.
type WelcomeHandler struct {
	emailService email.EmailService
	siteURL      string
}

func NewWelcomeHandler(emailService email.EmailService, siteURL string) *WelcomeHandler {
	return &WelcomeHandler{emailService: emailService, siteURL: siteURL}
}

func (h *WelcomeHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.NewsletterWelcomePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal NewsletterWelcome payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	data := email.NewsletterWelcomeData{
		Email:          payload.Email,
		Name:           payload.Name,
		UnsubscribeURL: h.UnsubscribeURL(payload.Email),
	}
	if err := h.emailService.SendNewsletterWelcome(ctx, data); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to send newsletter welcome")
		return fmt.Errorf("send newsletter welcome: %w", err)
	}
	return nil
}

func (h *WelcomeHandler) UnsubscribeURL(address string) string {
	return h.siteURL + "/newsletter/unsubscribe?email=" + url.QueryEscape(address)
}

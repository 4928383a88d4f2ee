package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/domains/newsletter"
	"orgsite-backend/internal/infrastructure/queue"
	"orgsite-backend/internal/shared"
	"orgsite-backend/internal/shared/apperror"
)

type newsletterService struct {
	repo  newsletter.Repository
	queue queue.Enqueuer
}

func NewNewsletterService(repo newsletter.Repository, q queue.Enqueuer) newsletter.Service {
	return &newsletterService{repo: repo, queue: q}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *newsletter.SubscribeRequest) (*newsletter.Subscriber, error) {
	req.Email = newsletter.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, &newsletter.Subscriber{
		Email:    req.Email,
		Name:     req.Name,
		IsActive: true,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			return nil, newsletter.ErrAlreadySubscribed
		}
		return nil, apperror.Internal("Failed to subscribe", err)
	}

	s.enqueueWelcome(ctx, created)
	return created, nil
}

func (s *newsletterService) enqueueWelcome(ctx context.Context, sub *newsletter.Subscriber) {
	if s.queue == nil {
		return
	}
	payload := shared.NewsletterWelcomePayload{Email: sub.Email}
	if sub.Name != nil {
		payload.Name = *sub.Name
	}
	if err := s.queue.Enqueue(ctx, shared.TypeSendNewsletterWelcome, payload); err != nil {
		log.Warn().Err(err).Str("email", sub.Email).Msg("failed to enqueue newsletter welcome")
	}
}

func (s *newsletterService) Unsubscribe(ctx context.Context, req *newsletter.UnsubscribeRequest) (*newsletter.Subscriber, error) {
	req.Email = newsletter.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	sub, err := s.repo.Deactivate(ctx, req.Email)
	if err != nil {
		return nil, mapRepoError(err, "Failed to unsubscribe")
	}
	return sub, nil
}

func (s *newsletterService) List(ctx context.Context) ([]newsletter.Subscriber, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch subscribers", err)
	}
	return subs, nil
}

func (s *newsletterService) GetByID(ctx context.Context, id uuid.UUID) (*newsletter.Subscriber, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Failed to fetch subscriber")
	}
	return sub, nil
}

func (s *newsletterService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "Failed to delete subscriber")
	}
	return nil
}

func mapRepoError(err error, message string) error {
	if errors.Is(err, apperror.ErrRecordNotFound) {
		return newsletter.ErrSubscriberNotFound
	}
	return apperror.Internal(message, err)
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"orgsite-backend/internal/domains/offering"
	pagecache "orgsite-backend/internal/infrastructure/cache"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/pkg/cache"
	"orgsite-backend/pkg/logger"
)

type offeringService struct {
	repo  offering.Repository
	pages cache.PageRevalidator
}

func NewOfferingService(repo offering.Repository, pages cache.PageRevalidator) offering.Service {
	return &offeringService{repo: repo, pages: pages}
}

func (s *offeringService) List(ctx context.Context) ([]offering.Offering, error) {
	return s.list(ctx, false)
}

func (s *offeringService) ListActive(ctx context.Context) ([]offering.Offering, error) {
	return s.list(ctx, true)
}

func (s *offeringService) list(ctx context.Context, activeOnly bool) ([]offering.Offering, error) {
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch services", err)
	}
	return items, nil
}

func (s *offeringService) GetByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "Failed to fetch service")
	}
	return o, nil
}

func (s *offeringService) Create(ctx context.Context, req *offering.CreateOfferingRequest) (*offering.Offering, error) {
	entity := req.ToEntity()
	if err := entity.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.Internal("Failed to create service", err)
	}
	s.touch(ctx)
	return created, nil
}

func (s *offeringService) Update(ctx context.Context, id uuid.UUID, req *offering.UpdateOfferingRequest) (*offering.Offering, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "Failed to fetch service")
	}

	req.ApplyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, wrap(err, "Failed to update service")
	}
	s.touch(ctx)
	return updated, nil
}

func (s *offeringService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap(err, "Failed to delete service")
	}
	s.touch(ctx)
	return nil
}

func (s *offeringService) touch(ctx context.Context) {
	if s.pages == nil {
		return
	}
	if err := s.pages.Revalidate(ctx, pagecache.PathHome); err != nil {
		logger.Error("revalidate home page after service change", err)
	}
}

func wrap(err error, message string) error {
	if errors.Is(err, apperror.ErrRecordNotFound) {
		return offering.ErrOfferingNotFound
	}
	return apperror.Internal(message, err)
}

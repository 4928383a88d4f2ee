package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"orgsite-backend/internal/domains/contact"
	pagecache "orgsite-backend/internal/infrastructure/cache"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/pkg/cache"
	"orgsite-backend/pkg/logger"
)

type contactService struct {
	repo  contact.Repository
	pages cache.PageRevalidator
}

func NewContactService(repo contact.Repository, pages cache.PageRevalidator) contact.Service {
	return &contactService{repo: repo, pages: pages}
}

func (s *contactService) List(ctx context.Context) ([]contact.Contact, error) {
	contacts, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch contacts", err)
	}
	return contacts, nil
}

func (s *contactService) ListActive(ctx context.Context) ([]contact.Contact, error) {
	contacts, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch contacts", err)
	}
	return contacts, nil
}

func (s *contactService) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Failed to fetch contact")
	}
	return c, nil
}

func (s *contactService) Create(ctx context.Context, req *contact.CreateContactRequest) (*contact.Contact, error) {
	entity := req.ToEntity()
	if err := entity.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.Internal("Failed to create contact", err)
	}

	s.revalidate(ctx)
	return created, nil
}

func (s *contactService) Update(ctx context.Context, id uuid.UUID, req *contact.UpdateContactRequest) (*contact.Contact, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Failed to fetch contact")
	}

	req.ApplyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, mapRepoError(err, "Failed to update contact")
	}

	s.revalidate(ctx)
	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "Failed to delete contact")
	}
	s.revalidate(ctx)
	return nil
}

func (s *contactService) revalidate(ctx context.Context) {
	if s.pages == nil {
		return
	}
	if err := s.pages.Revalidate(ctx, pagecache.PathHome); err != nil {
		logger.Error("revalidate home page after contact change", err)
	}
}

func mapRepoError(err error, message string) error {
	if errors.Is(err, apperror.ErrRecordNotFound) {
		return contact.ErrContactNotFound
	}
	return apperror.Internal(message, err)
}

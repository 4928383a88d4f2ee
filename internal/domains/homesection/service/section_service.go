package service

import (
	"context"
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"orgsite-backend/internal/domains/homesection"
	pagecache "orgsite-backend/internal/infrastructure/cache"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/pkg/cache"
	"orgsite-backend/pkg/logger"
)

type sectionService struct {
	repo  homesection.Repository
	pages cache.PageRevalidator
}

func NewSectionService(repo homesection.Repository, pages cache.PageRevalidator) homesection.Service {
	return &sectionService{repo: repo, pages: pages}
}

func (s *sectionService) List(ctx context.Context) ([]homesection.Section, error) {
	sections, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch home sections", err)
	}
	return sections, nil
}

func (s *sectionService) ListActive(ctx context.Context) ([]homesection.Section, error) {
	sections, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch home sections", err)
	}
	return sections, nil
}

func (s *sectionService) GetByID(ctx context.Context, id uuid.UUID) (*homesection.Section, error) {
	section, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Failed to fetch home section")
	}
	return section, nil
}

func (s *sectionService) Create(ctx context.Context, req *homesection.CreateSectionRequest) (*homesection.Section, error) {
	entity := req.ToEntity()
	if err := entity.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, mapRepoError(err, "Failed to create home section")
	}

	s.revalidate(ctx)
	return created, nil
}

func (s *sectionService) Update(ctx context.Context, id uuid.UUID, req *homesection.UpdateSectionRequest) (*homesection.Section, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Failed to fetch home section")
	}

	req.ApplyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, mapRepoError(err, "Failed to update home section")
	}

	s.revalidate(ctx)
	return updated, nil
}

func (s *sectionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "Failed to delete home section")
	}
	s.revalidate(ctx)
	return nil
}

// BulkUpsert validates every element up front; field errors are keyed by
// array index ("1.name").
func (s *sectionService) BulkUpsert(ctx context.Context, reqs []homesection.CreateSectionRequest) (*homesection.UpsertResult, error) {
	if len(reqs) == 0 {
		return nil, homesection.ErrEmptyBulkRequest
	}

	sections := make([]homesection.Section, 0, len(reqs))
	verrs := validation.Errors{}
	for i := range reqs {
		entity := reqs[i].ToEntity()
		if err := entity.Validate(); err != nil {
			verrs[strconv.Itoa(i)] = err
			continue
		}
		sections = append(sections, *entity)
	}
	if len(verrs) > 0 {
		return nil, apperror.Validation(verrs)
	}

	result, err := s.repo.UpsertByName(ctx, sections)
	if err != nil {
		return nil, apperror.Internal("Failed to save home sections", err)
	}

	s.revalidate(ctx)
	return result, nil
}

func (s *sectionService) revalidate(ctx context.Context) {
	if s.pages == nil {
		return
	}
	if err := s.pages.Revalidate(ctx, pagecache.PathHome); err != nil {
		logger.Error("revalidate home page after home section change", err)
	}
}

func mapRepoError(err error, message string) error {
	switch {
	case errors.Is(err, apperror.ErrRecordNotFound):
		return homesection.ErrSectionNotFound
	case errors.Is(err, apperror.ErrDuplicate):
		return homesection.ErrDuplicateName
	}
	return apperror.Internal(message, err)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"orgsite-backend/internal/domains/recruitment"
	pagecache "orgsite-backend/internal/infrastructure/cache"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/pkg/cache"
	"orgsite-backend/pkg/logger"
)

// Pages showing recruitment data.
var revalidatePaths = []string{pagecache.PathHome, pagecache.PathRecruitment, pagecache.PathAdminSettings}

type recruitmentService struct {
	repo  recruitment.Repository
	pages cache.PageRevalidator
}

func NewRecruitmentService(repo recruitment.Repository, pages cache.PageRevalidator) recruitment.Service {
	return &recruitmentService{repo: repo, pages: pages}
}

func (s *recruitmentService) GetCurrent(ctx context.Context) (*recruitment.Settings, error) {
	settings, err := s.repo.GetCurrent(ctx)
	if err != nil {
		return nil, mapError(err, "Failed to fetch recruitment settings")
	}
	return settings, nil
}

func (s *recruitmentService) GetByID(ctx context.Context, id uuid.UUID) (*recruitment.Settings, error) {
	settings, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, "Failed to fetch recruitment settings")
	}
	return settings, nil
}

func (s *recruitmentService) Create(ctx context.Context, req *recruitment.CreateSettingsRequest) (*recruitment.Settings, error) {
	entity := req.ToEntity()
	if err := entity.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.Internal("Failed to create recruitment settings", err)
	}
	s.revalidate(ctx)
	return created, nil
}

func (s *recruitmentService) Update(ctx context.Context, id uuid.UUID, req *recruitment.UpdateSettingsRequest) (*recruitment.Settings, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, "Failed to fetch recruitment settings")
	}

	req.ApplyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, mapError(err, "Failed to update recruitment settings")
	}
	s.revalidate(ctx)
	return updated, nil
}

func (s *recruitmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err, "Failed to delete recruitment settings")
	}
	s.revalidate(ctx)
	return nil
}

func (s *recruitmentService) SyncWindow(ctx context.Context, now time.Time) (bool, error) {
	current, err := s.repo.GetCurrent(ctx)
	if errors.Is(err, apperror.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	open, ok := current.WindowOpen(now)
	if !ok || open == current.IsOpen {
		return false, nil
	}

	current.IsOpen = open
	if _, err := s.repo.Update(ctx, current); err != nil {
		return false, err
	}

	logger.Info("recruitment window synced", map[string]interface{}{
		"settings_id": current.ID.String(),
		"is_open":     open,
	})
	s.revalidate(ctx)
	return true, nil
}

func (s *recruitmentService) revalidate(ctx context.Context) {
	if s.pages == nil {
		return
	}
	if err := s.pages.Revalidate(ctx, revalidatePaths...); err != nil {
		logger.Error("revalidate recruitment pages", err)
	}
}

func mapError(err error, message string) error {
	if errors.Is(err, apperror.ErrRecordNotFound) {
		return recruitment.ErrSettingsNotFound
	}
	return apperror.Internal(message, err)
}

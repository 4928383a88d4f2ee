package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"orgsite-backend/internal/domains/project"
	pagecache "orgsite-backend/internal/infrastructure/cache"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/pkg/cache"
	"orgsite-backend/pkg/logger"
)

type projectService struct {
	repo  project.Repository
	pages cache.PageRevalidator
}

func NewProjectService(repo project.Repository, pages cache.PageRevalidator) project.Service {
	return &projectService{repo: repo, pages: pages}
}

func (s *projectService) List(ctx context.Context) ([]project.Project, error) {
	projects, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch projects", err)
	}
	return projects, nil
}

func (s *projectService) ListActive(ctx context.Context) ([]project.Project, error) {
	projects, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch projects", err)
	}
	return projects, nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, apperror.Internal("Failed to fetch project", err)
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, req *project.CreateProjectRequest) (*project.Project, error) {
	entity := req.ToEntity()
	if err := entity.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.Internal("Failed to create project", err)
	}
	s.revalidateHome(ctx)
	return created, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req *project.UpdateProjectRequest) (*project.Project, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, apperror.Internal("Failed to update project", err)
	}
	s.revalidateHome(ctx)
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			return project.ErrProjectNotFound
		}
		return apperror.Internal("Failed to delete project", err)
	}
	s.revalidateHome(ctx)
	return nil
}

// Projects are listed on the landing page.
func (s *projectService) revalidateHome(ctx context.Context) {
	if s.pages == nil {
		return
	}
	if err := s.pages.Revalidate(ctx, pagecache.PathHome); err != nil {
		logger.Error("revalidate home page after project change", err)
	}
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"orgsite-backend/internal/domains/team"
	pagecache "orgsite-backend/internal/infrastructure/cache"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/pkg/cache"
	"orgsite-backend/pkg/logger"
)

type memberService struct {
	repo  team.Repository
	pages cache.PageRevalidator
}

func NewMemberService(repo team.Repository, pages cache.PageRevalidator) team.Service {
	return &memberService{repo: repo, pages: pages}
}

func (s *memberService) List(ctx context.Context) ([]team.Member, error) {
	return s.list(ctx, false)
}

func (s *memberService) ListActive(ctx context.Context) ([]team.Member, error) {
	return s.list(ctx, true)
}

func (s *memberService) list(ctx context.Context, activeOnly bool) ([]team.Member, error) {
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch team members", err)
	}
	return items, nil
}

func (s *memberService) GetByID(ctx context.Context, id uuid.UUID) (*team.Member, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "Failed to fetch team member")
	}
	return o, nil
}

func (s *memberService) Create(ctx context.Context, req *team.CreateMemberRequest) (*team.Member, error) {
	entity := req.ToEntity()
	if err := entity.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, apperror.Internal("Failed to create team member", err)
	}
	s.touch(ctx)
	return created, nil
}

func (s *memberService) Update(ctx context.Context, id uuid.UUID, req *team.UpdateMemberRequest) (*team.Member, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "Failed to fetch team member")
	}

	req.ApplyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, wrap(err, "Failed to update team member")
	}
	s.touch(ctx)
	return updated, nil
}

func (s *memberService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap(err, "Failed to delete team member")
	}
	s.touch(ctx)
	return nil
}

func (s *memberService) touch(ctx context.Context) {
	if s.pages == nil {
		return
	}
	if err := s.pages.Revalidate(ctx, pagecache.PathHome); err != nil {
		logger.Error("revalidate home page after team change", err)
	}
}

func wrap(err error, message string) error {
	if errors.Is(err, apperror.ErrRecordNotFound) {
		return team.ErrMemberNotFound
	}
	return apperror.Internal(message, err)
}

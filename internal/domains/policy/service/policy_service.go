package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"orgsite-backend/internal/domains/policy"
	"orgsite-backend/internal/shared/apperror"
)

type policyService struct {
	repo policy.Repository
}

func NewPolicyService(repo policy.Repository) policy.Service {
	return &policyService{repo: repo}
}

func (s *policyService) List(ctx context.Context) ([]policy.Policy, error) {
	policies, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch policies", err)
	}
	return policies, nil
}

func (s *policyService) GetByID(ctx context.Context, id uuid.UUID) (*policy.Policy, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, "Failed to fetch policy")
	}
	return p, nil
}

func (s *policyService) GetActive(ctx context.Context, policyType string) (*policy.Policy, error) {
	if !policy.IsValidType(policyType) {
		return nil, policy.ErrPolicyNotFound
	}
	p, err := s.repo.GetActiveByType(ctx, policyType)
	if err != nil {
		return nil, mapError(err, "Failed to fetch policy")
	}
	return p, nil
}

// Create rejects a second active policy of the same type. The check is the
// unique index itself, so concurrent creates cannot both succeed.
func (s *policyService) Create(ctx context.Context, req *policy.CreatePolicyRequest) (*policy.Policy, error) {
	entity := req.ToEntity()
	if err := entity.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, mapError(err, "Failed to create policy")
	}
	return created, nil
}

func (s *policyService) Update(ctx context.Context, id uuid.UUID, req *policy.UpdatePolicyRequest) (*policy.Policy, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, "Failed to fetch policy")
	}

	req.ApplyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, mapError(err, "Failed to update policy")
	}
	return updated, nil
}

func (s *policyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err, "Failed to delete policy")
	}
	return nil
}

func mapError(err error, message string) error {
	switch {
	case errors.Is(err, apperror.ErrRecordNotFound):
		return policy.ErrPolicyNotFound
	case errors.Is(err, apperror.ErrDuplicate):
		return policy.ErrActivePolicyExists
	}
	return apperror.Internal(message, err)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"orgsite-backend/internal/domains/auth"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/pkg/jwt"
)

const bcryptCost = 12

// TokenManager is satisfied by *jwt.Manager.
type TokenManager interface {
	GenerateSessionToken(userID, email string) (string, time.Time, error)
	ValidateSessionToken(token string) (*jwt.Claims, error)
}

type authService struct {
	repo    auth.Repository
	tokens  TokenManager
	limiter *LoginLimiter
}

func NewAuthService(repo auth.Repository, tokens TokenManager, limiter *LoginLimiter) auth.Service {
	return &authService{repo: repo, tokens: tokens, limiter: limiter}
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest, ip string) (*auth.LoginResponse, error) {
	req.Email = auth.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	if s.limiter.Blocked(ctx, ip) {
		return nil, auth.ErrTooManyAttempts
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, apperror.ErrRecordNotFound) {
			return nil, apperror.Internal("Failed to look up admin", err)
		}
		s.limiter.RecordFailure(ctx, ip)
		return nil, auth.ErrInvalidCredentials
	}

	if !u.IsActive || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		s.limiter.RecordFailure(ctx, ip)
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateSessionToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, apperror.Internal("Failed to create session", err)
	}

	s.limiter.Reset(ctx, ip)
	log.Info().Str("admin_id", u.ID.String()).Msg("admin logged in")

	return &auth.LoginResponse{User: u, ExpiresAt: expiresAt, Token: token}, nil
}

func (s *authService) ValidateSessionToken(token string) (*jwt.Claims, error) {
	return s.tokens.ValidateSessionToken(token)
}

func (s *authService) CreateAdmin(ctx context.Context, req *auth.CreateAdminRequest) (*auth.AdminUser, error) {
	req.Email = auth.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal("Failed to hash password", err)
	}

	created, err := s.repo.Create(ctx, &auth.AdminUser{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         auth.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicate) {
			return nil, auth.ErrEmailExists
		}
		return nil, apperror.Internal("Failed to create admin", err)
	}
	return created, nil
}

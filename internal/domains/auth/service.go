package auth

import (
	"context"

	"orgsite-backend/pkg/jwt"
)

type Service interface {
	// Login checks credentials for a client identified by ip.
	Login(ctx context.Context, req *LoginRequest, ip string) (*LoginResponse, error)
	ValidateSessionToken(token string) (*jwt.Claims, error)
	CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*AdminUser, error)
}

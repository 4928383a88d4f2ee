package auth

import "context"

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*AdminUser, error)
	// Create fails with apperror.ErrDuplicate when the email is taken.
	Create(ctx context.Context, u *AdminUser) (*AdminUser, error)
}

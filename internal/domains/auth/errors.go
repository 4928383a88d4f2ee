package auth

import "orgsite-backend/internal/shared/apperror"

var (
	// Unknown email, wrong password and inactive account all look the same to the caller.
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrTooManyAttempts    = apperror.New(apperror.KindTooManyRequests, "TOO_MANY_LOGIN_ATTEMPTS", "Too many failed login attempts, try again later")
	ErrEmailExists        = apperror.Conflict("ADMIN_EMAIL_EXISTS", "An admin with this email already exists")
)

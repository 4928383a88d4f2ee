package blog

import "orgsite-backend/internal/shared/apperror"

var (
	ErrPostNotFound  = apperror.NotFound("POST_NOT_FOUND", "Blog post not found")
	ErrDuplicateSlug = apperror.Conflict("DUPLICATE_SLUG", "A post with this slug already exists")
)

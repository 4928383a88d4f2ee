package homesection

import "orgsite-backend/internal/shared/apperror"

var (
	ErrSectionNotFound  = apperror.NotFound("HOME_SECTION_NOT_FOUND", "Home section not found")
	ErrDuplicateName    = apperror.Conflict("HOME_SECTION_NAME_EXISTS", "A home section with this name already exists")
	ErrEmptyBulkRequest = apperror.BadRequest("At least one section is required")
)

package project

import "orgsite-backend/internal/shared/apperror"

var ErrProjectNotFound = apperror.NotFound("PROJECT_NOT_FOUND", "Project not found")

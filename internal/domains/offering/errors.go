package offering

import "orgsite-backend/internal/shared/apperror"

var ErrOfferingNotFound = apperror.NotFound("SERVICE_NOT_FOUND", "Service not found")

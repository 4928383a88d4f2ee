package contact

import "orgsite-backend/internal/shared/apperror"

var ErrContactNotFound = apperror.NotFound("CONTACT_NOT_FOUND", "Contact not found")

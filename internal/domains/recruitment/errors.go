package recruitment

import "orgsite-backend/internal/shared/apperror"

var ErrSettingsNotFound = apperror.NotFound("RECRUITMENT_SETTINGS_NOT_FOUND", "Recruitment settings not found")

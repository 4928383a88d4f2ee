package upload

import "orgsite-backend/internal/shared/apperror"

var (
	ErrFileRequired = apperror.New(apperror.KindValidation, "FILE_REQUIRED", "A file is required")
	ErrNotAnImage   = apperror.New(apperror.KindValidation, "INVALID_FILE_TYPE", "Only image files are allowed")
	ErrFileTooLarge = apperror.New(apperror.KindValidation, "FILE_TOO_LARGE", "File exceeds the maximum upload size")
)

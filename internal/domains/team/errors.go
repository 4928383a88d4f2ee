package team

import "orgsite-backend/internal/shared/apperror"

var ErrMemberNotFound = apperror.NotFound("TEAM_MEMBER_NOT_FOUND", "Team member not found")

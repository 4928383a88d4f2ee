package policy

import "orgsite-backend/internal/shared/apperror"

var (
	ErrPolicyNotFound     = apperror.NotFound("POLICY_NOT_FOUND", "Policy not found")
	ErrActivePolicyExists = apperror.Conflict("ACTIVE_POLICY_EXISTS", "An active policy of this type already exists")
)

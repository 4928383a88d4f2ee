package newsletter

import "orgsite-backend/internal/shared/apperror"

var (
	ErrSubscriberNotFound = apperror.NotFound("SUBSCRIBER_NOT_FOUND", "Subscriber not found")
	ErrAlreadySubscribed  = apperror.Conflict("ALREADY_SUBSCRIBED", "This email is already subscribed")
)

package utils

import "github.com/google/uuid"

// ParseID parses a path identifier. ok=false for anything that is not a UUID.
func ParseID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

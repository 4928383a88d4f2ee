package policy

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"orgsite-backend/internal/shared/validators"
)

const (
	TypePrivacy = "privacy"
	TypeCookie  = "cookie"

	DefaultVersion   = "1.0"
	maxVersionLength = 20
)

var Types = []string{TypePrivacy, TypeCookie}

// Policy is a legal page. At most one active policy exists per type.
type Policy struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p Policy) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.Required, validators.OneOf(Types...)),
		validation.Field(&p.Title, validation.Required, validation.Length(1, validators.MaxTitleLength)),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.Version, validation.Required, validation.Length(1, maxVersionLength)),
	)
}

func IsValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

package contact

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"orgsite-backend/internal/shared/validators"
)

const (
	TypeEmail     = "email"
	TypePhone     = "phone"
	TypeAddress   = "address"
	TypeFacebook  = "facebook"
	TypeInstagram = "instagram"
	TypeLinkedIn  = "linkedin"
)

var Types = []string{TypeEmail, TypePhone, TypeAddress, TypeFacebook, TypeInstagram, TypeLinkedIn}

// Contact is one contact channel shown in the site footer and contact page.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Value     string    `json:"value"`
	Label     *string   `json:"label"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Contact) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Type, validation.Required, validators.OneOf(Types...)),
		validation.Field(&c.Value, validation.Required, validation.Length(1, 500)),
		validation.Field(&c.Label, validation.NilOrNotEmpty, validation.Length(1, validators.MaxLabelLength)),
		validation.Field(&c.Order, validation.Min(0)),
	)
}

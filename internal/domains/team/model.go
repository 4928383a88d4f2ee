package team

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"orgsite-backend/internal/shared/validators"
)

// Member of the organization's board or team page.
type Member struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m Member) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, validators.MaxTitleLength)),
		validation.Field(&m.Role, validation.Required, validation.Length(1, validators.MaxLabelLength)),
		validation.Field(&m.Image, validators.ImageRef),
		validation.Field(&m.Description, validation.Length(0, 2000)),
		validation.Field(&m.Order, validation.Min(0)),
	)
}

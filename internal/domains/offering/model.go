package offering

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"orgsite-backend/internal/shared/validators"
)

const maxSectorLength = 100

// Offering is a service the organization offers (stored in the services table).
type Offering struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sector      string    `json:"sector"`
	// Icon is free text: an icon name or an image URL.
	Icon      *string   `json:"icon"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o Offering) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Title, validation.Required, validation.Length(1, validators.MaxTitleLength)),
		validation.Field(&o.Description, validation.Required),
		validation.Field(&o.Sector, validation.Required, validation.Length(1, maxSectorLength)),
		validation.Field(&o.Icon, validation.Length(0, 500)),
		validation.Field(&o.Order, validation.Min(0)),
	)
}

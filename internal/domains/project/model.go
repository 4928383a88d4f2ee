package project

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"orgsite-backend/internal/shared/validators"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	Tags        []string  `json:"tags"`
	Client      *string   `json:"client"`
	Year        *int      `json:"year"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, validators.MaxTitleLength)),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Image, validators.ImageRef),
		validation.Field(&p.Tags, validators.Tags),
		validation.Field(&p.Client, validation.Length(0, validators.MaxTitleLength)),
		validation.Field(&p.Year, validation.Min(1900), validation.Max(2100)),
		validation.Field(&p.Order, validation.Min(0)),
	)
}

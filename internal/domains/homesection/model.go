package homesection

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"orgsite-backend/internal/shared/validators"
)

// Section is one block of the landing page, addressed by its unique name
// (e.g. "hero", "about"). Config carries block specific settings.
type Section struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Title       *string                `json:"title"`
	Subtitle    *string                `json:"subtitle"`
	Description *string                `json:"description"`
	IsActive    bool                   `json:"isActive"`
	Order       int                    `json:"order"`
	Config      map[string]interface{} `json:"config"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func (s Section) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, validators.MaxLabelLength)),
		validation.Field(&s.Title, validation.Length(0, validators.MaxTitleLength)),
		validation.Field(&s.Subtitle, validation.Length(0, validators.MaxTitleLength)),
		validation.Field(&s.Description, validation.Length(0, 5000)),
		validation.Field(&s.Order, validation.Min(0)),
	)
}

// UpsertResult reports what a bulk upsert did.
type UpsertResult struct {
	Sections []Section `json:"sections"`
	Inserted int       `json:"inserted"`
	Updated  int       `json:"updated"`
}

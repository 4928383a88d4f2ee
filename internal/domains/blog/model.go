package blog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"orgsite-backend/internal/shared/validators"
)

type Post struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Tags          []string   `json:"tags"`
	IsPublished   bool       `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (p Post) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, validators.MaxTitleLength)),
		validation.Field(&p.Slug, validation.Required, validation.Length(1, validators.MaxTitleLength), validators.Slug),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.Excerpt, validation.Length(0, validators.MaxExcerptLength)),
		validation.Field(&p.FeaturedImage, validators.ImageRef),
		validation.Field(&p.Tags, validators.Tags),
	)
}

// Publish marks the post published, stamping publishedAt if it has none.
func (p *Post) Publish(now time.Time) {
	p.IsPublished = true
	if p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

package blog

import (
	"time"

	"github.com/google/uuid"

	"orgsite-backend/internal/shared/utils"
	"orgsite-backend/internal/shared/validators"
)

// CreatePostRequest - POST /api/v1/blog
// An empty slug is derived from the title.
type CreatePostRequest struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Tags          []string   `json:"tags"`
	IsPublished   bool       `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// UpdatePostRequest - PUT /api/v1/blog/:id
type UpdatePostRequest struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Content       *string    `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Tags          *[]string  `json:"tags"`
	IsPublished   *bool      `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// PostDetail is a published post with its rendered body.
type PostDetail struct {
	Post
	ContentHTML string `json:"contentHtml"`
}

type ListFilter struct {
	PublishedOnly bool
}

// deriveSlug builds a slug from the title. Titles without any Latin letter
// or digit ("Новости") get "post-" plus a random suffix.
func deriveSlug(title string) string {
	if slug := utils.GenerateSlug(title); slug != "" {
		return slug
	}
	return "post-" + uuid.NewString()[:8]
}

func (req *CreatePostRequest) ToEntity(now time.Time) *Post {
	p := &Post{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Tags:          validators.CleanTags(req.Tags),
		PublishedAt:   req.PublishedAt,
	}
	if p.Slug == "" {
		p.Slug = deriveSlug(p.Title)
	}
	if req.IsPublished {
		p.Publish(now)
	}
	return p
}

func (req *UpdatePostRequest) ApplyTo(p *Post, now time.Time) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
		if p.Slug == "" {
			p.Slug = deriveSlug(p.Title)
		}
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Excerpt != nil {
		p.Excerpt = req.Excerpt
	}
	if req.FeaturedImage != nil {
		p.FeaturedImage = req.FeaturedImage
	}
	if req.Tags != nil {
		p.Tags = validators.CleanTags(*req.Tags)
	}
	if req.PublishedAt != nil {
		p.PublishedAt = req.PublishedAt
	}
	if req.IsPublished != nil {
		if *req.IsPublished {
			p.Publish(now)
		} else {
			p.IsPublished = false
		}
	}
}

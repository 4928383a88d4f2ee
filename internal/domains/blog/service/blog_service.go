package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"orgsite-backend/internal/domains/blog"
	"orgsite-backend/internal/shared/apperror"
)

type blogService struct {
	repo     blog.Repository
	renderer blog.Renderer
	now      func() time.Time
}

func NewBlogService(repo blog.Repository, renderer blog.Renderer) blog.Service {
	return &blogService{repo: repo, renderer: renderer, now: time.Now}
}

func (s *blogService) List(ctx context.Context, filter blog.ListFilter) ([]blog.Post, error) {
	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch blog posts", err)
	}
	return posts, nil
}

func (s *blogService) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, "Failed to fetch blog post")
	}
	return post, nil
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*blog.PostDetail, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, s.mapError(err, "Failed to fetch blog post")
	}
	if !post.IsPublished {
		return nil, blog.ErrPostNotFound
	}

	html, err := s.renderer.Render(post.Content)
	if err != nil {
		return nil, apperror.Internal("Failed to render blog post", err)
	}
	return &blog.PostDetail{Post: *post, ContentHTML: html}, nil
}

func (s *blogService) Create(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error) {
	post := req.ToEntity(s.now())
	if err := post.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, s.mapError(err, "Failed to create blog post")
	}
	return created, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req *blog.UpdatePostRequest) (*blog.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, "Failed to fetch blog post")
	}

	req.ApplyTo(post, s.now())
	if err := post.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, s.mapError(err, "Failed to update blog post")
	}
	return updated, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapError(err, "Failed to delete blog post")
	}
	return nil
}

func (s *blogService) mapError(err error, message string) error {
	switch {
	case errors.Is(err, apperror.ErrRecordNotFound):
		return blog.ErrPostNotFound
	case errors.Is(err, apperror.ErrDuplicate):
		return blog.ErrDuplicateSlug
	default:
		return apperror.Internal(message, err)
	}
}

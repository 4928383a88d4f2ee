package project

import "orgsite-backend/internal/shared/validators"

type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       *string  `json:"image"`
	Tags        []string `json:"tags"`
	Client      *string  `json:"client"`
	Year        *int     `json:"year"`
	Order       *int     `json:"order"`
	IsActive    *bool    `json:"isActive"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Tags        *[]string `json:"tags"`
	Client      *string   `json:"client"`
	Year        *int      `json:"year"`
	Order       *int      `json:"order"`
	IsActive    *bool     `json:"isActive"`
}

func (req *CreateProjectRequest) ToEntity() *Project {
	p := &Project{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Tags:        validators.CleanTags(req.Tags),
		Client:      req.Client,
		Year:        req.Year,
		IsActive:    true,
	}
	if req.Order != nil {
		p.Order = *req.Order
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return p
}

func (req *UpdateProjectRequest) ApplyTo(p *Project) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Image != nil {
		p.Image = req.Image
	}
	if req.Tags != nil {
		p.Tags = validators.CleanTags(*req.Tags)
	}
	if req.Client != nil {
		p.Client = req.Client
	}
	if req.Year != nil {
		p.Year = req.Year
	}
	if req.Order != nil {
		p.Order = *req.Order
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

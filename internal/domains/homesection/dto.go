package homesection

// CreateSectionRequest - POST /api/v1/home-sections, also one element of the
// bulk PUT /api/v1/home-sections body.
type CreateSectionRequest struct {
	Name        string                 `json:"name"`
	Title       *string                `json:"title"`
	Subtitle    *string                `json:"subtitle"`
	Description *string                `json:"description"`
	IsActive    *bool                  `json:"isActive"`
	Order       *int                   `json:"order"`
	Config      map[string]interface{} `json:"config"`
}

// UpdateSectionRequest - PUT /api/v1/home-sections/:id
// Omitted fields keep their stored value.
type UpdateSectionRequest struct {
	Name        *string                `json:"name"`
	Title       *string                `json:"title"`
	Subtitle    *string                `json:"subtitle"`
	Description *string                `json:"description"`
	IsActive    *bool                  `json:"isActive"`
	Order       *int                   `json:"order"`
	Config      map[string]interface{} `json:"config"`
}

func (req *CreateSectionRequest) ToEntity() *Section {
	s := &Section{
		Name:        req.Name,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		IsActive:    true,
		Config:      req.Config,
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if req.Order != nil {
		s.Order = *req.Order
	}
	return s
}

func (req *UpdateSectionRequest) ApplyTo(s *Section) {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Title != nil {
		s.Title = req.Title
	}
	if req.Subtitle != nil {
		s.Subtitle = req.Subtitle
	}
	if req.Description != nil {
		s.Description = req.Description
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if req.Order != nil {
		s.Order = *req.Order
	}
	if req.Config != nil {
		s.Config = req.Config
	}
}

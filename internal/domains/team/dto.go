package team

type CreateMemberRequest struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateMemberRequest struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (req *CreateMemberRequest) ToEntity() *Member {
	m := &Member{
		Name:        req.Name,
		Role:        req.Role,
		Image:       req.Image,
		Description: req.Description,
		IsActive:    true,
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	return m
}

func (req *UpdateMemberRequest) ApplyTo(m *Member) {
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Role != nil {
		m.Role = *req.Role
	}
	if req.Image != nil {
		m.Image = req.Image
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
}

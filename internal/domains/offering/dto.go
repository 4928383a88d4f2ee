package offering

type CreateOfferingRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Sector      string  `json:"sector"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateOfferingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Sector      *string `json:"sector"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (req *CreateOfferingRequest) ToEntity() *Offering {
	o := &Offering{
		Title:       req.Title,
		Description: req.Description,
		Sector:      req.Sector,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if req.Order != nil {
		o.Order = *req.Order
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}
	return o
}

func (req *UpdateOfferingRequest) ApplyTo(o *Offering) {
	if req.Title != nil {
		o.Title = *req.Title
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.Sector != nil {
		o.Sector = *req.Sector
	}
	if req.Icon != nil {
		o.Icon = req.Icon
	}
	if req.Order != nil {
		o.Order = *req.Order
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}
}

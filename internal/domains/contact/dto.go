package contact

// CreateContactRequest - POST /api/v1/contacts
type CreateContactRequest struct {
	Type     string  `json:"type"`
	Value    string  `json:"value"`
	Label    *string `json:"label"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// UpdateContactRequest - PUT /api/v1/contacts/:id
// Omitted fields keep their stored value.
type UpdateContactRequest struct {
	Type     *string `json:"type"`
	Value    *string `json:"value"`
	Label    *string `json:"label"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (req *CreateContactRequest) ToEntity() *Contact {
	c := &Contact{
		Type:     req.Type,
		Value:    req.Value,
		Label:    req.Label,
		IsActive: true,
	}
	if req.Order != nil {
		c.Order = *req.Order
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	return c
}

func (req *UpdateContactRequest) ApplyTo(c *Contact) {
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Value != nil {
		c.Value = *req.Value
	}
	if req.Label != nil {
		c.Label = req.Label
	}
	if req.Order != nil {
		c.Order = *req.Order
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
}

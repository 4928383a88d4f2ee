package policy

type CreatePolicyRequest struct {
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	IsActive *bool   `json:"isActive"`
	Version  *string `json:"version"`
}

type UpdatePolicyRequest struct {
	Type     *string `json:"type"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"isActive"`
	Version  *string `json:"version"`
}

func (req *CreatePolicyRequest) ToEntity() *Policy {
	p := &Policy{
		Type:     req.Type,
		Title:    req.Title,
		Content:  req.Content,
		IsActive: true,
		Version:  DefaultVersion,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Version != nil {
		p.Version = *req.Version
	}
	return p
}

func (req *UpdatePolicyRequest) ApplyTo(p *Policy) {
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Version != nil {
		p.Version = *req.Version
	}
}

package recruitment

import "time"

type CreateSettingsRequest struct {
	IsOpen       bool       `json:"isOpen"`
	OpenDate     *time.Time `json:"openDate"`
	CloseDate    *time.Time `json:"closeDate"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	Benefits     *string    `json:"benefits"`
	FormURL      *string    `json:"formUrl"`
	SheetURL     *string    `json:"sheetUrl"`
	FAQs         []FAQ      `json:"faqs"`
}

type UpdateSettingsRequest struct {
	IsOpen       *bool      `json:"isOpen"`
	OpenDate     *time.Time `json:"openDate"`
	CloseDate    *time.Time `json:"closeDate"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	Benefits     *string    `json:"benefits"`
	FormURL      *string    `json:"formUrl"`
	SheetURL     *string    `json:"sheetUrl"`
	FAQs         *[]FAQ     `json:"faqs"`
}

// Status is the public summary shown on the landing page.
type Status struct {
	IsOpen    bool       `json:"isOpen"`
	OpenDate  *time.Time `json:"openDate"`
	CloseDate *time.Time `json:"closeDate"`
	FormURL   *string    `json:"formUrl"`
}

func (req *CreateSettingsRequest) ToEntity() *Settings {
	faqs := req.FAQs
	if faqs == nil {
		faqs = []FAQ{}
	}
	return &Settings{
		IsOpen:       req.IsOpen,
		OpenDate:     req.OpenDate,
		CloseDate:    req.CloseDate,
		Description:  req.Description,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		FormURL:      req.FormURL,
		SheetURL:     req.SheetURL,
		FAQs:         faqs,
	}
}

func (req *UpdateSettingsRequest) ApplyTo(s *Settings) {
	if req.IsOpen != nil {
		s.IsOpen = *req.IsOpen
	}
	if req.OpenDate != nil {
		s.OpenDate = req.OpenDate
	}
	if req.CloseDate != nil {
		s.CloseDate = req.CloseDate
	}
	if req.Description != nil {
		s.Description = req.Description
	}
	if req.Requirements != nil {
		s.Requirements = req.Requirements
	}
	if req.Benefits != nil {
		s.Benefits = req.Benefits
	}
	if req.FormURL != nil {
		s.FormURL = req.FormURL
	}
	if req.SheetURL != nil {
		s.SheetURL = req.SheetURL
	}
	if req.FAQs != nil {
		s.FAQs = *req.FAQs
	}
}

func (s *Settings) ToStatus() Status {
	return Status{IsOpen: s.IsOpen, OpenDate: s.OpenDate, CloseDate: s.CloseDate, FormURL: s.FormURL}
}

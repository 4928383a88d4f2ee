package recruitment

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (f FAQ) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Question, validation.Required, validation.Length(1, 500)),
		validation.Field(&f.Answer, validation.Required),
	)
}

// Settings is the recruitment singleton. The current row is the newest one.
type Settings struct {
	ID           uuid.UUID  `json:"id"`
	IsOpen       bool       `json:"isOpen"`
	OpenDate     *time.Time `json:"openDate"`
	CloseDate    *time.Time `json:"closeDate"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	Benefits     *string    `json:"benefits"`
	FormURL      *string    `json:"formUrl"`
	SheetURL     *string    `json:"sheetUrl"`
	FAQs         []FAQ      `json:"faqs"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.CloseDate, validation.By(func(interface{}) error {
			if s.OpenDate != nil && s.CloseDate != nil && s.CloseDate.Before(*s.OpenDate) {
				return errors.New("must not be before openDate")
			}
			return nil
		})),
		validation.Field(&s.FormURL, is.URL),
		validation.Field(&s.SheetURL, is.URL),
		validation.Field(&s.FAQs),
	)
}

// WindowOpen reports whether now falls in [openDate, closeDate).
// ok is false when either date is unset.
func (s *Settings) WindowOpen(now time.Time) (open bool, ok bool) {
	if s.OpenDate == nil || s.CloseDate == nil {
		return false, false
	}
	return !now.Before(*s.OpenDate) && now.Before(*s.CloseDate), true
}

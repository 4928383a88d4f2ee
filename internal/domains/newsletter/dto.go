package newsletter

import validation "github.com/go-ozzo/ozzo-validation/v4"

// SubscribeRequest - POST /api/v1/newsletter/subscribe
type SubscribeRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validateEmail(&r.Email),
		validation.Field(&r.Name, validation.Length(0, 100)),
	)
}

// UnsubscribeRequest - POST /api/v1/newsletter/unsubscribe
type UnsubscribeRequest struct {
	Email string `json:"email"`
}

func (r UnsubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r, validateEmail(&r.Email))
}

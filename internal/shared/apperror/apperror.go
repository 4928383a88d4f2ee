package apperror

import (
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Repository-level sentinels. Repositories return these; services translate
// them to domain errors.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate key")
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindTooManyRequests
)

// Error is the error type understood by response.HandleError.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two *Error values by code so domain sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, "UNAUTHORIZED", message)
}

func TooManyRequests(message string) *Error {
	return New(KindTooManyRequests, "TOO_MANY_REQUESTS", message)
}

func BadRequest(message string) *Error {
	return New(KindValidation, "BAD_REQUEST", message)
}

// Internal wraps an unclassified failure.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: message, Err: err}
}

// Validation turns an ozzo validation result into a 400 carrying field details.
// Any other non-nil error is reported as a generic validation failure.
func Validation(err error) *Error {
	if err == nil {
		return nil
	}
	appErr := &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: "Validation failed", Err: err}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		appErr.Details = FieldErrors(verrs)
		return appErr
	}
	var ierr validation.InternalError
	if errors.As(err, &ierr) {
		return Internal("validation failed unexpectedly", err)
	}
	appErr.Details = map[string]string{"_": err.Error()}
	return appErr
}

// FieldErrors flattens ozzo errors into field -> message, nested fields joined with ".".
func FieldErrors(verrs validation.Errors) map[string]string {
	out := make(map[string]string, len(verrs))
	flatten("", verrs, out)
	return out
}

func flatten(prefix string, verrs validation.Errors, out map[string]string) {
	for field, err := range verrs {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(err, &nested) {
			flatten(key, nested, out)
			continue
		}
		out[key] = err.Error()
	}
}

// As extracts an *Error from the chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

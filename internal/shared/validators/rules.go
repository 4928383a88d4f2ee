package validators

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"orgsite-backend/internal/shared/utils"
)

const (
	MaxTitleLength   = 200
	MaxLabelLength   = 100
	MaxExcerptLength = 500
	MaxTags          = 20
	MaxTagLength     = 50
)

// ImageRef accepts an absolute URL or a site-relative path ("/images/a.png").
var ImageRef = validation.By(func(value interface{}) error {
	s, ok := stringValue(value)
	if !ok || s == "" {
		return nil
	}
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return nil
	}
	if err := is.URL.Validate(s); err != nil {
		return errors.New("must be a valid URL or a path starting with /")
	}
	return nil
})

// Slug checks the URL slug shape.
var Slug = validation.By(func(value interface{}) error {
	s, ok := stringValue(value)
	if !ok || s == "" {
		return nil
	}
	if !utils.IsValidSlug(s) {
		return errors.New("must contain only lowercase letters, digits and single hyphens")
	}
	return nil
})

// Tags limits the list size and each tag's length.
var Tags = validation.By(func(value interface{}) error {
	tags, _ := value.([]string)
	if len(tags) > MaxTags {
		return errors.New("must have at most 20 tags")
	}
	for _, tag := range tags {
		if n := len(strings.TrimSpace(tag)); n == 0 || n > MaxTagLength {
			return errors.New("each tag must be 1-50 characters")
		}
	}
	return nil
})

// OneOf is validation.In for string enums.
func OneOf(values ...string) validation.Rule {
	in := make([]interface{}, len(values))
	for i, v := range values {
		in[i] = v
	}
	return validation.In(in...).Error("must be one of: " + strings.Join(values, ", "))
}

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", true
		}
		return *v, true
	}
	return "", false
}

// CleanTags trims tags and drops empty ones; nil becomes an empty list.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

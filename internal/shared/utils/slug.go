package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugPattern is the shape every stored slug must match.
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	// đ/Đ do not decompose under NFD
	strokeReplacer = strings.NewReplacer("đ", "d", "Đ", "D", "ø", "o", "Ø", "O", "ł", "l", "Ł", "L")
)

// GenerateSlug turns a title into a URL slug.
// "Tuyển thành viên 2025!" → "tuyen-thanh-vien-2025"
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(input)
	lower := strings.ToLower(ascii)
	hyphenated := slugInvalidChars.ReplaceAllString(lower, "-")
	return strings.Trim(hyphenated, "-")
}

// RemoveDiacritics strips combining marks ("Ánh" → "Anh").
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strokeReplacer.Replace(input))
	if err != nil {
		return input
	}
	return out
}

func IsValidSlug(s string) bool {
	return SlugPattern.MatchString(s)
}

package utils

import (
	"path"
	"regexp"
	"strings"
)

const (
	maxFilenameLength = 100
	maxExtLength      = 10
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func cleanSegment(s string) string {
	return strings.Trim(unsafeFileChars.ReplaceAllString(RemoveDiacritics(s), "-"), "-.")
}

// SanitizeFilename keeps the base name of an uploaded file with only
// [a-zA-Z0-9._-], collapsing everything else to "-". Stem and extension are
// cleaned separately so the extension survives a non-Latin stem.
// "../My Photo (1).PNG" → "My-Photo-1.PNG", "图片.png" → "file.png"
func SanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	ext = cleanSegment(strings.TrimPrefix(ext, "."))
	if len(ext) > maxExtLength {
		stem, ext = base, ""
	}
	stem = cleanSegment(stem)
	if stem == "" {
		stem = "file"
	}
	if ext != "" {
		ext = "." + ext
	}

	if over := len(stem) + len(ext) - maxFilenameLength; over > 0 {
		stem = stem[over:]
	}
	return stem + ext
}

// SanitizeFolder returns a safe relative folder ("team/2025"), or fallback
// when nothing usable remains.
func SanitizeFolder(folder, fallback string) string {
	var parts []string
	for _, p := range strings.Split(strings.ReplaceAll(folder, `\`, "/"), "/") {
		if p = cleanSegment(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, "/")
}

package albums

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	uuidPattern    = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	numericPattern = regexp.MustCompile(`^\d{1,10}$`)
	slugPattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,50}$`)
)

// ValidSlug reports whether id is acceptable as an album identifier: a
// UUID, a numeric id of up to ten digits, or a short URL-safe slug.
// Untrimmed input is rejected rather than silently fixed.
func ValidSlug(id string) bool {
	if id == "" || strings.TrimSpace(id) != id {
		return false
	}
	return uuidPattern.MatchString(strings.ToLower(id)) ||
		numericPattern.MatchString(id) ||
		slugPattern.MatchString(id)
}

// SanitizeSlug returns the URL-escaped identifier, or "" when invalid.
func SanitizeSlug(id string) string {
	if !ValidSlug(id) {
		return ""
	}
	return url.QueryEscape(id)
}

// ShareURL is the QR target for an album: the landing page with the album
// preselected. Empty when the slug is invalid.
func ShareURL(base, slug string) string {
	s := SanitizeSlug(slug)
	if s == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/?album=" + s
}

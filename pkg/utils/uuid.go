package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a UUID string
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a string to a lowercase URL-safe slug
func Slugify(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateOrderNo generates a short human-readable order number
func GenerateOrderNo() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

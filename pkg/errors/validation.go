package errors

import (
	"strings"
	"unicode"
)

// MaxSearchLimit is the largest page size the search endpoint accepts.
const MaxSearchLimit = 100

// ValidateID validates a project, version, team or user identifier (or slug)
// before it is placed in a URL path segment.
//
// The rules are conservative:
//   - No empty identifiers
//   - No control characters or whitespace
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateID(index int, param, id string) error {
	if id == "" {
		return NewInvalidValue(index, param, "identifier cannot be empty")
	}
	if len(id) > 256 {
		return NewInvalidValue(index, param, "identifier too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return NewInvalidValue(index, param, "identifier contains whitespace or control characters")
		}
	}
	if strings.ContainsAny(id, "/\\?#") || strings.Contains(id, "..") {
		return NewInvalidValue(index, param, "identifier contains invalid characters: %q", id)
	}
	return nil
}

// ValidatePage validates search pagination arguments.
// offsetIndex and limitIndex are the parameter positions used in the error.
func ValidatePage(offsetIndex, limitIndex, offset, limit int) error {
	if offset < 0 {
		return NewInvalidValue(offsetIndex, "offset", "must be >= 0, got %d", offset)
	}
	if limit < 0 || limit > MaxSearchLimit {
		return NewInvalidValue(limitIndex, "limit", "must be between 0 and %d, got %d", MaxSearchLimit, limit)
	}
	return nil
}

// ValidateURL validates a base URL string.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "URL must use http or https scheme")
	}
	return nil
}

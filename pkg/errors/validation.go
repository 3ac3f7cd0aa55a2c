package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxScheduleBytes is the largest schedule document accepted from untrusted
// sources (the HTTP API). Local files read by the CLI are not capped.
const MaxScheduleBytes = 1 << 20

// scheduleExtensions is the set of recognized schedule file extensions.
var scheduleExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// ValidateSchedulePath validates a schedule file path before it is opened.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
//   - Extension must be .json, .yaml, or .yml
func ValidateSchedulePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "schedule path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "schedule path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "schedule path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !scheduleExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unrecognized schedule extension %q (must be .json, .yaml, or .yml)", ext)
	}

	return nil
}

// ValidateScheduleSize rejects oversized schedule documents from the API.
func ValidateScheduleSize(n int) error {
	if n > MaxScheduleBytes {
		return New(ErrCodeInvalidInput, "schedule too large: %d bytes (max %d)", n, MaxScheduleBytes)
	}
	return nil
}

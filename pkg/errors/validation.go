package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds input paths accepted by the CLI and loader.
const maxPathLength = 4096

// ValidatePath checks that path is usable as an input file path.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	return nil
}

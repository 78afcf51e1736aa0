package errors

import (
	"strings"
	"unicode"
)

// MaxExtent bounds every coordinate and dimension a layout accepts. Sizes may
// not exceed it and centers must lie within ±MaxExtent on both axes, so
// rectangle edges (Min + Size) and the spiral around a center stay far from
// integer overflow.
const MaxExtent = 1 << 30

// ValidateSize checks that a rectangle size is strictly positive and at most
// MaxExtent in both dimensions.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidSize, "size must be positive, got %dx%d", width, height)
	}
	if width > MaxExtent || height > MaxExtent {
		return New(ErrCodeInvalidSize, "size %dx%d exceeds the maximum extent %d", width, height, MaxExtent)
	}
	return nil
}

// ValidateCenter checks that a layout center lies within ±MaxExtent on both
// axes.
func ValidateCenter(x, y int) error {
	if x < -MaxExtent || x > MaxExtent || y < -MaxExtent || y > MaxExtent {
		return New(ErrCodeInvalidInput, "center (%d,%d) is outside ±%d", x, y, MaxExtent)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed map[string]bool) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !allowed[format] {
		return New(ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
	return nil
}

// ValidatePath validates a user-supplied output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateURL validates a cache backend URL.
// Only redis:// and rediss:// schemes are accepted.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "URL must use redis or rediss scheme")
	}
	return nil
}

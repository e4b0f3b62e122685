package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// MinDimension is the smallest canvas width or height the generator accepts.
//
// The split threshold is a quarter of the canvas size. A split drawn at the
// region's start yields a child equal to its parent, so with a threshold of
// 2 a region reproduces itself about once per split and recursion never
// settles. From 16 pixels the threshold is at least 4 and depth stays small.
const MinDimension = 16

// MaxDimension bounds canvas sizes accepted from user input.
const MaxDimension = 16384

// ValidateDimensions checks that a canvas size is usable for generation.
func ValidateDimensions(width, height int) error {
	if width < MinDimension || height < MinDimension {
		return New(ErrCodeInvalidDimensions, "canvas %dx%d is too small (minimum %dx%d)", width, height, MinDimension, MinDimension)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "canvas %dx%d is too large (maximum %dx%d)", width, height, MaxDimension, MaxDimension)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
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

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}

// hexColorRegex matches "#rrggbb" colours.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a "#rrggbb" colour string.
func ValidateHexColor(s string) error {
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidPalette, "invalid colour %q: expected #rrggbb", s)
	}
	return nil
}

package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// Layouts accepted by [ValidateLayout].
const (
	LayoutSpring   = "spring"
	LayoutCircular = "circular"
)

// OutputExtensions lists the file extensions an output path may carry.
var OutputExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".dot", ".gv", ".pdf"}

// ValidateNodeCount rejects negative node counts. Zero is a valid empty graph.
func ValidateNodeCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "node count must not be negative, got %d", n)
	}
	return nil
}

// ValidateLayout checks that name is one of the supported layout algorithms.
func ValidateLayout(name string) error {
	switch name {
	case LayoutSpring, LayoutCircular:
		return nil
	case "":
		return New(ErrCodeInvalidLayout, "layout cannot be empty")
	}
	return New(ErrCodeInvalidLayout, "unknown layout %q (want %s or %s)", name, LayoutSpring, LayoutCircular)
}

// ValidateOutputPath validates an image output path.
//
// Validation rules:
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
//   - Extension must be one of [OutputExtensions] (case-insensitive)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidInput, "output path must name a file, not a directory")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return New(ErrCodeInvalidFormat, "output path %q has no extension (want one of %s)", path, strings.Join(OutputExtensions, ", "))
	}
	if !slices.Contains(OutputExtensions, ext) {
		return New(ErrCodeInvalidFormat, "unsupported output format %q (want one of %s)", ext, strings.Join(OutputExtensions, ", "))
	}
	return nil
}

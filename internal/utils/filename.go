package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces an uploaded filename to a safe storage name:
// any path components are stripped and every run of characters outside
// [A-Za-z0-9._-] collapses to a single underscore. Returns "" when
// nothing usable remains, which callers must treat as a rejected file.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")

	if name == "" {
		return ""
	}
	return name
}

package content

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Post files follow the Jekyll-style convention: <YYYY-MM-DD>-<slug>.md
var filenamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-([a-z0-9]+(?:-[a-z0-9]+)*)\.(?:md|markdown)$`)

// ParseFilename extracts the date and slug from a post file path.
func ParseFilename(path string) (time.Time, string, error) {
	base := strings.ToLower(filepath.Base(path))

	matches := filenamePattern.FindStringSubmatch(base)
	if matches == nil {
		return time.Time{}, "", fmt.Errorf("post filename %q does not match <date>-<slug>.md", base)
	}

	date, err := time.Parse("2006-01-02", matches[1])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("post filename %q has invalid date: %w", base, err)
	}

	return date, matches[2], nil
}

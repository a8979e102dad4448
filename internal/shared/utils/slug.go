package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a title. The transform is
// deterministic: the same title always yields the same slug. Collisions
// between different titles surface as a unique-constraint violation on the
// articles table.
func Slugify(input string) string {
	lower := strings.ToLower(input)

	hyphenated := strings.ReplaceAll(lower, " ", "-")

	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")

	normalized := slugHyphenRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

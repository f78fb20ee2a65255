package parse

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Slug normalizes a device name into the identifier prefix used for generated
// device ids: lower case, surrounding whitespace trimmed, interior runs of
// whitespace collapsed to a single underscore.
func Slug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

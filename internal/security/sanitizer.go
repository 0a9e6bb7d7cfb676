package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeString trims whitespace, removes null bytes and caps the length
// of free-text input.
func SanitizeString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")

	if len(input) > 1000 {
		input = input[:1000]
	}

	return input
}

// SanitizeHTML removes all HTML tags. Question text is echoed back to every
// player with HTML parse mode, so authored input must never carry markup.
func SanitizeHTML(input string) string {
	return htmlPolicy.Sanitize(input)
}

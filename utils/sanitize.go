package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans HTML content to prevent XSS attacks. Post bodies and comment
// text come from a rich-text widget and are sanitized again server-side.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

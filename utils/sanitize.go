package utils

import "github.com/microcosm-cc/bluemonday"

// Profile fields are plain text; strip all markup rather than allowing a subset.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips HTML from user-supplied text to prevent XSS.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

package utils

import "github.com/microcosm-cc/bluemonday"

// contentPolicy permits the markup customers and agents commonly paste
// while stripping scripts and event handlers.
var contentPolicy = bluemonday.UGCPolicy()

// SanitizeContent strips unsafe HTML from user-supplied message content.
func SanitizeContent(content string) string {
	return contentPolicy.Sanitize(content)
}

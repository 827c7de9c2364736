package validation

import "regexp"

// Stored-XSS mitigation for free-text fields. This is a plain string
// transformation applied before persistence, not a security boundary on its
// own; response encoding remains the caller's responsibility.
var (
	scriptTagRegex    = regexp.MustCompile(`(?is)<\s*/?\s*script[^>]*>`)
	javascriptURIRe   = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandlerAttrs = regexp.MustCompile(`(?i)\s+on[a-z]+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
)

// Sanitize strips script tags, javascript: URIs and inline event-handler
// attributes from free text.
func Sanitize(s string) string {
	s = scriptTagRegex.ReplaceAllString(s, "")
	s = javascriptURIRe.ReplaceAllString(s, "")
	s = eventHandlerAttrs.ReplaceAllString(s, "")
	return s
}

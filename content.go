package pressgate

import "strings"

// NormalizeContent collapses every whitespace run to a single space, trims
// leading and trailing whitespace, and truncates the result to
// MaxContentLen bytes. The returned string is the authoritative article
// content.
func NormalizeContent(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > MaxContentLen {
		s = s[:MaxContentLen]
	}
	return s
}

// Excerpt returns the first ExcerptLen bytes of content. The excerpt is
// always a prefix of the content it was derived from.
func Excerpt(content string) string {
	if len(content) > ExcerptLen {
		return content[:ExcerptLen]
	}
	return content
}

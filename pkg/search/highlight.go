package search

import (
	"regexp"
	"strings"
)

// Highlight wraps every occurrence of query in text with the given tags,
// case-insensitively. If the pattern cannot be built from the query, the
// original text is returned unhighlighted.
func Highlight(text, query, openTag, closeTag string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return text
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return openTag + m + closeTag
	})
}

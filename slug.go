package sitecensus

import (
	"strings"
	"unicode"
)

// Slugify creates a URL-safe path segment from a label.
// Converts to lowercase, replaces spaces and hyphens with a single hyphen,
// and drops everything else that is not a letter or digit.
func Slugify(label string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

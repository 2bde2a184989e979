package sitecensus

import (
	"strings"
	"unicode"
)

// TitleFromStem derives a display title from a filename stem.
// Hyphens become spaces and every run of letters is capitalized on its first
// letter and lower-cased after it, so "god-s-word" becomes "God S Word" and
// "1st-john" becomes "1St John".
func TitleFromStem(stem string) string {
	s := strings.ReplaceAll(stem, "-", " ")

	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		sb.WriteRune(r)
		prevLetter = false
	}
	return sb.String()
}

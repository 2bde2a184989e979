package sitecensus

import "regexp"

// DefaultDateLimit is the number of date candidates recorded per document.
const DefaultDateLimit = 3

// DefaultDatePatterns returns the calendar-date patterns tried in order.
func DefaultDatePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		regexp.MustCompile(`(?i)(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`),
		regexp.MustCompile(`(?i)\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}`),
	}
}

// DateScanner finds candidate date strings in text.
type DateScanner struct {
	Patterns []*regexp.Regexp
	Limit    int
}

// NewDateScanner returns a scanner using the default patterns and limit.
func NewDateScanner() *DateScanner {
	return &DateScanner{
		Patterns: DefaultDatePatterns(),
		Limit:    DefaultDateLimit,
	}
}

// Scan returns up to Limit matches of the first pattern that matches at all.
// Later patterns are not consulted once one has matched.
func (s *DateScanner) Scan(text string) []string {
	limit := s.Limit
	if limit <= 0 {
		limit = DefaultDateLimit
	}
	for _, re := range s.Patterns {
		if matches := re.FindAllString(text, limit); len(matches) > 0 {
			return matches
		}
	}
	return nil
}

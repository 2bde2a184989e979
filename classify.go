package sitecensus

import "strings"

// SeriesRule assigns a label to posts whose filename stem contains Substring.
type SeriesRule struct {
	Substring string `yaml:"substring"`
	Label     string `yaml:"label"`
}

// Match reports whether the rule applies to the stem.
func (r SeriesRule) Match(stem string) bool {
	return strings.Contains(stem, r.Substring)
}

// DefaultSeriesRules returns the article series of the site export.
// Order matters: filenames can contain several of the substrings.
func DefaultSeriesRules() []SeriesRule {
	return []SeriesRule{
		{Substring: "thessalonians", Label: "Thessalonians"},
		{Substring: "ephesians", Label: "Ephesians"},
		{Substring: "salvation-in-isaiah", Label: "Salvation in Isaiah"},
		{Substring: "matthew-6", Label: "Lord's Prayer (Matthew 6)"},
		{Substring: "the-true-nature-of-a-gospel-church", Label: "The True Nature of a Gospel Church"},
	}
}

// Classifier buckets posts into series using an ordered rule table.
type Classifier struct {
	Rules    []SeriesRule
	Fallback string
}

// Classify returns the label of the first rule matching stem, or the
// fallback label when none match.
func (c *Classifier) Classify(stem string) string {
	for _, r := range c.Rules {
		if r.Match(stem) {
			return r.Label
		}
	}
	return c.Fallback
}

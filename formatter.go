package sitecensus

import (
	"fmt"
	"strings"
)

// Summary holds the bucket counts of an inventory.
type Summary struct {
	AnnualPages    int
	BookStudies    int
	TopicalStudies int
	SermonPages    int
	Series         int
	Articles       int
}

// Summarize counts the entries of each bucket.
func Summarize(inv *Inventory) Summary {
	s := inv.Sermons
	return Summary{
		AnnualPages:    len(inv.BibleStudies.AnnualPages),
		BookStudies:    len(inv.BibleStudies.BookStudies),
		TopicalStudies: len(inv.BibleStudies.TopicalStudies),
		SermonPages:    len(s.Audio) + len(s.Text) + len(s.LordsDay) + len(s.ArchivePages),
		Series:         len(inv.Articles.Series),
		Articles:       inv.Articles.Series.Total(),
	}
}

// FormatSummary renders the human-readable counts printed after a build.
// The fallback bucket is counted in the totals but left out of the
// per-series breakdown.
func FormatSummary(inv *Inventory) string {
	sum := Summarize(inv)

	var b strings.Builder
	b.WriteString("Content Summary:\n")
	fmt.Fprintf(&b, "- Bible Studies Annual Pages: %d\n", sum.AnnualPages)
	fmt.Fprintf(&b, "- Book Studies: %d\n", sum.BookStudies)
	fmt.Fprintf(&b, "- Topical Studies: %d\n", sum.TopicalStudies)
	fmt.Fprintf(&b, "- Sermon Pages: %d\n", sum.SermonPages)
	fmt.Fprintf(&b, "- Article Series: %d\n", sum.Series)
	fmt.Fprintf(&b, "- Total Articles: %d\n", sum.Articles)

	b.WriteString("\nArticle Series Breakdown:\n")
	for _, s := range inv.Articles.Series {
		if s.Fallback {
			continue
		}
		fmt.Fprintf(&b, "  - %s: %d articles\n", s.Label, len(s.Articles))
	}

	return b.String()
}

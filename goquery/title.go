// Package goquery reads structured signals from HTML pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitecensus"
)

// Ensure TitleExtractor implements sitecensus.TitleExtractor at compile time.
var _ sitecensus.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor reads the page title from an HTML document.
// It prefers og:title, then <title>, then the first <h1>. Site builders often
// append the site name to <title> ("Heaven | WVEC"); that suffix is removed.
type TitleExtractor struct {
	// Separators split the page title from the site name.
	Separators []string
}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{
		Separators: []string{" | ", " - "},
	}
}

// ExtractTitle returns the page title, or "" when none is found or the
// markup cannot be parsed.
func (e *TitleExtractor) ExtractTitle(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if og = collapseSpace(og); og != "" {
			return og
		}
	}

	if title := collapseSpace(doc.Find("title").First().Text()); title != "" {
		return e.stripSiteName(title)
	}

	return collapseSpace(doc.Find("h1").First().Text())
}

// stripSiteName removes a trailing " | Site" style suffix.
func (e *TitleExtractor) stripSiteName(title string) string {
	for _, sep := range e.Separators {
		if i := strings.LastIndex(title, sep); i > 0 {
			return strings.TrimSpace(title[:i])
		}
	}
	return title
}

// collapseSpace trims s and folds internal whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

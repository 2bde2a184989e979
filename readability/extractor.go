// Package readability extracts the main content of exported pages with
// go-readability. It serves as the fallback when trafilatura finds nothing.
package readability

import (
	"strings"

	"github.com/fwojciec/sitecensus"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitecensus.Extractor at compile time.
var _ sitecensus.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// The exported pages are local files, so no page URL is available to
// resolve relative links against.
func (e *Extractor) Extract(rawHTML string) (*sitecensus.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitecensus.Errorf(sitecensus.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	result := &sitecensus.ExtractResult{
		Title:       article.Title,
		Author:      strings.TrimSpace(article.Byline),
		ContentHTML: article.Content,
	}
	if article.PublishedTime != nil {
		result.Date = *article.PublishedTime
	}
	return result, nil
}

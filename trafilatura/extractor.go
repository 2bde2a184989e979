// Package trafilatura extracts the main content of exported pages with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sitecensus"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitecensus.Extractor at compile time.
var _ sitecensus.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract an article body and its
// metadata (title, author, publication date).
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
// Comments are excluded: the old site's comment widgets are not content.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract processes raw HTML and returns the article body.
func (e *Extractor) Extract(rawHTML string) (*sitecensus.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitecensus.Errorf(sitecensus.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &sitecensus.ExtractResult{
		Title:       result.Metadata.Title,
		Author:      result.Metadata.Author,
		Date:        result.Metadata.Date,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package sitecensus

import "time"

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Author is the byline, when the page declares one.
	Author string

	// Date is the publication date found in page metadata, if any.
	Date time.Time

	// ContentHTML is the main content as clean HTML with the site
	// chrome (navigation, footer, sidebar) removed.
	ContentHTML string
}

// Extractor extracts the main content from an HTML page, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// An empty ContentHTML means the extractor found nothing worth keeping.
	Extract(html string) (*ExtractResult, error)
}

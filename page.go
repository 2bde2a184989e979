package sitecensus

import (
	"context"
	"time"
)

// Page is an article converted for migration to the new site.
type Page struct {
	// Path is the slash-separated output path relative to the export root.
	Path    string
	Source  string
	Title   string
	Series  string
	Author  string
	Date    time.Time
	Content string // Markdown
}

// Validate returns an error if the page cannot be stored.
func (p *Page) Validate() error {
	if p.Path == "" {
		return Errorf(EINVALID, "page path required")
	}
	if p.Source == "" {
		return Errorf(EINVALID, "page source required")
	}
	return nil
}

// ExportProgress reports progress during an export.
type ExportProgress struct {
	File      string
	Completed int
	Total     int
	Error     error
}

// ExportProgressFunc is called as articles are processed.
type ExportProgressFunc func(ExportProgress)

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}

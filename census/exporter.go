package census

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/fwojciec/sitecensus"
)

// ExportResult holds the outcome of an export.
type ExportResult struct {
	Saved  int
	Failed int
	Bytes  int
}

// Exporter converts the inventoried articles to markdown pages.
type Exporter struct {
	FS      fs.FS
	PostDir string
	Decoder sitecensus.Decoder

	// Extractors are tried in order; the first to return non-empty
	// content wins.
	Extractors []sitecensus.Extractor
	Converter  sitecensus.Converter
	Store      sitecensus.PageStore

	Logger *slog.Logger
}

// Export converts every article of inv and stages it in the store.
// Articles that cannot be read or extracted are counted as failed and
// skipped. A store failure aborts the export. The store is committed when
// at least one page was saved and aborted otherwise.
func (e *Exporter) Export(ctx context.Context, inv *sitecensus.Inventory, progress sitecensus.ExportProgressFunc) (*ExportResult, error) {
	total := inv.Articles.Series.Total()
	result := &ExportResult{}

	var completed int
	for _, s := range inv.Articles.Series {
		for _, a := range s.Articles {
			if err := ctx.Err(); err != nil {
				_ = e.Store.Abort()
				return nil, err
			}

			page, err := e.convert(s, a)
			completed++
			if progress != nil {
				progress(sitecensus.ExportProgress{
					File:      a.File,
					Completed: completed,
					Total:     total,
					Error:     err,
				})
			}
			if err != nil {
				result.Failed++
				e.logger().Warn("skipping article", "file", a.File, "err", err)
				continue
			}

			if err := e.Store.Save(ctx, page); err != nil {
				_ = e.Store.Abort()
				return nil, fmt.Errorf("save %s: %w", page.Path, err)
			}
			result.Saved++
			result.Bytes += len(page.Content)
		}
	}

	if result.Saved == 0 {
		if err := e.Store.Abort(); err != nil {
			return nil, fmt.Errorf("abort export: %w", err)
		}
		return result, nil
	}

	if err := e.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit export: %w", err)
	}
	return result, nil
}

// convert reads one article and turns it into a page.
func (e *Exporter) convert(s *sitecensus.Series, a sitecensus.Article) (*sitecensus.Page, error) {
	raw, err := fs.ReadFile(e.FS, path.Join(e.PostDir, a.File))
	if err != nil {
		return nil, err
	}

	extracted, err := e.extract(e.Decoder.Decode(raw))
	if err != nil {
		return nil, err
	}

	markdown, err := e.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	title := extracted.Title
	if title == "" {
		title = a.Title
	}

	return &sitecensus.Page{
		Path:    path.Join(sitecensus.Slugify(s.Label), sitecensus.Stem(a.File)+".md"),
		Source:  a.File,
		Title:   title,
		Series:  s.Label,
		Author:  extracted.Author,
		Date:    extracted.Date,
		Content: markdown,
	}, nil
}

// extract runs the extractors in order until one yields content.
func (e *Exporter) extract(content string) (*sitecensus.ExtractResult, error) {
	var errs []error
	for _, x := range e.Extractors {
		res, err := x.Extract(content)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if res.ContentHTML != "" {
			return res, nil
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return nil, sitecensus.Errorf(sitecensus.ENOTFOUND, "no article content found")
}

func (e *Exporter) logger() *slog.Logger {
	return discard(e.Logger)
}

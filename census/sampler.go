package census

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitecensus"
)

// Sampler reads a handful of posts and derives auxiliary signals from them:
// size, page title, content hash and candidate dates.
type Sampler struct {
	FS      fs.FS
	Decoder sitecensus.Decoder
	Text    sitecensus.TextExtractor

	// Titles is optional; without it PageTitle is left empty.
	Titles sitecensus.TitleExtractor
	Dates  *sitecensus.DateScanner

	Logger *slog.Logger
}

// Sample returns a document for each readable name, in input order.
// Missing files are skipped silently; unreadable files are logged and
// skipped. Only a canceled context aborts the run.
func (s *Sampler) Sample(ctx context.Context, names []string) ([]*sitecensus.Document, error) {
	var docs []*sitecensus.Document
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := s.SampleFile(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			s.logger().Warn("skipping unreadable sample", "file", name, "err", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// SampleFile reads one file and derives its document.
func (s *Sampler) SampleFile(name string) (*sitecensus.Document, error) {
	raw, err := fs.ReadFile(s.FS, name)
	if err != nil {
		return nil, err
	}

	content := s.Decoder.Decode(raw)
	text := s.Text.ExtractText(content)

	base := path.Base(name)
	doc := &sitecensus.Document{
		Filename:    base,
		Title:       sitecensus.TitleFromStem(sitecensus.Stem(base)),
		Size:        len(raw),
		HasContent:  len(raw) > sitecensus.HasContentThreshold,
		ContentHash: hashContent(raw),
		Text:        text,
	}
	if s.Titles != nil {
		doc.PageTitle = s.Titles.ExtractTitle(content)
	}
	if s.Dates != nil {
		doc.PossibleDates = s.Dates.Scan(text)
	}
	return doc, nil
}

func (s *Sampler) logger() *slog.Logger {
	return discard(s.Logger)
}

// hashContent computes the xxHash of raw and returns it as hex.
func hashContent(raw []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(raw))
}

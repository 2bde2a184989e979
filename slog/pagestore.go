package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitecensus"
)

// Ensure LoggingPageStore implements sitecensus.PageStore.
var _ sitecensus.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with logging.
type LoggingPageStore struct {
	next   sitecensus.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next sitecensus.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the page path.
func (s *LoggingPageStore) Save(ctx context.Context, page *sitecensus.Page) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("page save",
			"path", page.Path,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, page)
}

// Commit delegates to the wrapped store.
func (s *LoggingPageStore) Commit() (err error) {
	defer func() {
		s.logger.Info("export commit", "err", err)
	}()
	return s.next.Commit()
}

// Abort delegates to the wrapped store.
func (s *LoggingPageStore) Abort() (err error) {
	defer func() {
		s.logger.Info("export abort", "err", err)
	}()
	return s.next.Abort()
}

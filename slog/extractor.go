// Package slog provides logging decorators for sitecensus services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitecensus"
)

// Ensure the decorators implement their interfaces.
var (
	_ sitecensus.TextExtractor = (*LoggingTextExtractor)(nil)
	_ sitecensus.Extractor     = (*LoggingExtractor)(nil)
)

// LoggingTextExtractor wraps a TextExtractor with debug logging.
type LoggingTextExtractor struct {
	next   sitecensus.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next sitecensus.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs sizes.
func (e *LoggingTextExtractor) ExtractText(markup string) (text string) {
	defer func(begin time.Time) {
		e.logger.Debug("text extraction",
			"bytes", len(markup),
			"chars", len(text),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractText(markup)
}

// LoggingExtractor wraps a content Extractor with logging.
type LoggingExtractor struct {
	name   string
	next   sitecensus.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The name identifies
// the wrapped extractor in log lines.
func NewLoggingExtractor(name string, next sitecensus.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{name: name, next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (result *sitecensus.ExtractResult, err error) {
	defer func(begin time.Time) {
		var contentBytes int
		if result != nil {
			contentBytes = len(result.ContentHTML)
		}
		e.logger.Info("content extraction",
			"extractor", e.name,
			"bytes", len(html),
			"content_bytes", contentBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}

// Package census builds the content inventory of a site export.
// It walks the well-known pages and the post directory, classifies the
// posts into series, samples a few posts for dates, and exports articles
// as markdown for migration.
package census

import "log/slog"

// discard returns l, or a logger that drops everything when l is nil.
func discard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mosaic-community/sitesearch"
)

// Ensure LoggingIndexWriter implements sitesearch.IndexWriter.
var _ sitesearch.IndexWriter = (*LoggingIndexWriter)(nil)

// LoggingIndexWriter wraps an IndexWriter with logging.
type LoggingIndexWriter struct {
	next   sitesearch.IndexWriter
	logger *slog.Logger
}

// NewLoggingIndexWriter creates a new LoggingIndexWriter.
func NewLoggingIndexWriter(next sitesearch.IndexWriter, logger *slog.Logger) *LoggingIndexWriter {
	return &LoggingIndexWriter{next: next, logger: logger}
}

// WriteIndex delegates to the wrapped writer and logs the operation.
func (w *LoggingIndexWriter) WriteIndex(ctx context.Context, idx *sitesearch.Index) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("index write",
			"records", len(idx.Items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteIndex(ctx, idx)
}

// Ensure LoggingSitemapWriter implements sitesearch.SitemapWriter.
var _ sitesearch.SitemapWriter = (*LoggingSitemapWriter)(nil)

// LoggingSitemapWriter wraps a SitemapWriter with logging.
type LoggingSitemapWriter struct {
	next   sitesearch.SitemapWriter
	logger *slog.Logger
}

// NewLoggingSitemapWriter creates a new LoggingSitemapWriter.
func NewLoggingSitemapWriter(next sitesearch.SitemapWriter, logger *slog.Logger) *LoggingSitemapWriter {
	return &LoggingSitemapWriter{next: next, logger: logger}
}

// WriteSitemap delegates to the wrapped writer and logs the operation.
func (w *LoggingSitemapWriter) WriteSitemap(ctx context.Context, paths []string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("sitemap write",
			"paths", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteSitemap(ctx, paths)
}

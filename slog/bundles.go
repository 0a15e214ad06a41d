package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mosaic-community/sitesearch"
)

// Ensure LoggingBundleSource implements sitesearch.BundleSource.
var _ sitesearch.BundleSource = (*LoggingBundleSource)(nil)

// LoggingBundleSource wraps a BundleSource with debug logging.
type LoggingBundleSource struct {
	next   sitesearch.BundleSource
	logger *slog.Logger
}

// NewLoggingBundleSource creates a new LoggingBundleSource.
func NewLoggingBundleSource(next sitesearch.BundleSource, logger *slog.Logger) *LoggingBundleSource {
	return &LoggingBundleSource{next: next, logger: logger}
}

// FindBundle delegates to the wrapped source and logs the operation.
func (s *LoggingBundleSource) FindBundle(ctx context.Context, lang string) (bundle *sitesearch.Bundle, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("bundle load",
			"lang", lang,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBundle(ctx, lang)
}

// Package slog provides logging decorators for sitesearch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mosaic-community/sitesearch"
)

// Ensure LoggingArtifactSource implements sitesearch.ArtifactSource.
var _ sitesearch.ArtifactSource = (*LoggingArtifactSource)(nil)

// LoggingArtifactSource wraps an ArtifactSource with debug logging.
type LoggingArtifactSource struct {
	next   sitesearch.ArtifactSource
	logger *slog.Logger
}

// NewLoggingArtifactSource creates a new LoggingArtifactSource.
func NewLoggingArtifactSource(next sitesearch.ArtifactSource, logger *slog.Logger) *LoggingArtifactSource {
	return &LoggingArtifactSource{next: next, logger: logger}
}

// Load delegates to the wrapped source and logs the operation.
func (s *LoggingArtifactSource) Load(ctx context.Context, name string) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("artifact load",
			"name", name,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, name)
}

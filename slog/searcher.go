package slog

import (
	"log/slog"
	"time"

	"github.com/mosaic-community/sitesearch"
)

// Ensure LoggingSearcher implements sitesearch.Searcher.
var _ sitesearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   sitesearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next sitesearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) Search(query string, facets []string) (records []*sitesearch.Record) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"lang", sitesearch.DetectLanguage(query),
			"facets", facets,
			"results", len(records),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(query, facets)
}

// Suggestions delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) Suggestions(query string) (suggestions []string) {
	defer func(begin time.Time) {
		s.logger.Debug("suggestions",
			"query", query,
			"count", len(suggestions),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Suggestions(query)
}

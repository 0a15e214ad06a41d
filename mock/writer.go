package mock

import (
	"context"

	"github.com/mosaic-community/sitesearch"
)

var (
	_ sitesearch.IndexWriter   = (*IndexWriter)(nil)
	_ sitesearch.SitemapWriter = (*SitemapWriter)(nil)
)

// IndexWriter is a mock implementation of sitesearch.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, idx *sitesearch.Index) error
}

func (w *IndexWriter) WriteIndex(ctx context.Context, idx *sitesearch.Index) error {
	return w.WriteIndexFn(ctx, idx)
}

// SitemapWriter is a mock implementation of sitesearch.SitemapWriter.
type SitemapWriter struct {
	WriteSitemapFn func(ctx context.Context, paths []string) error
}

func (w *SitemapWriter) WriteSitemap(ctx context.Context, paths []string) error {
	return w.WriteSitemapFn(ctx, paths)
}

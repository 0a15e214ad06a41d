package mock

import (
	"context"

	"github.com/mosaic-community/sitesearch"
)

// Compile-time interface verification.
var (
	_ sitesearch.RouteSource  = (*RouteSource)(nil)
	_ sitesearch.PageSource   = (*PageSource)(nil)
	_ sitesearch.BundleSource = (*BundleSource)(nil)
)

// RouteSource is a mock implementation of sitesearch.RouteSource.
type RouteSource struct {
	RoutesFn func(ctx context.Context) ([]sitesearch.Route, error)
}

func (s *RouteSource) Routes(ctx context.Context) ([]sitesearch.Route, error) {
	return s.RoutesFn(ctx)
}

// PageSource is a mock implementation of sitesearch.PageSource.
type PageSource struct {
	FindPageFn func(ctx context.Context, id string) (*sitesearch.Page, error)
}

func (s *PageSource) FindPage(ctx context.Context, id string) (*sitesearch.Page, error) {
	return s.FindPageFn(ctx, id)
}

// BundleSource is a mock implementation of sitesearch.BundleSource.
type BundleSource struct {
	FindBundleFn func(ctx context.Context, lang string) (*sitesearch.Bundle, error)
}

func (s *BundleSource) FindBundle(ctx context.Context, lang string) (*sitesearch.Bundle, error) {
	return s.FindBundleFn(ctx, lang)
}

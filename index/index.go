// Package index builds the static search index from the site's route
// table, page sources and locale bundles.
package index

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mosaic-community/sitesearch"
	"golang.org/x/sync/errgroup"
)

// Builder generates the search index.
type Builder struct {
	Routes    sitesearch.RouteSource
	Pages     sitesearch.PageSource
	Extractor sitesearch.Extractor
	Bundles   sitesearch.BundleSource
	Index     sitesearch.IndexWriter

	// Sitemap, if set, receives the unique route paths.
	Sitemap sitesearch.SitemapWriter

	// Locales lists the additional locales to emit records for.
	Locales []string

	// Rules expands page text into tags. Defaults to sitesearch.TagRules.
	Rules sitesearch.SynonymRules

	// Labels maps routes to translation fields. Defaults to sitesearch.RouteLabels.
	Labels map[string]string

	Concurrency int

	// Now returns the generation time. Defaults to time.Now.
	Now func() time.Time
}

// ProgressEvent reports progress during index generation.
type ProgressEvent struct {
	Type  ProgressType
	Total int
	Path  string
	Page  string
	Lang  string
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressRouteSkipped
	ProgressLocaleSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting generation progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of extracting a single route.
type pageResult struct {
	route   sitesearch.Route
	extract *sitesearch.ExtractResult
	err     error
	skipped bool
}

type localeBundle struct {
	lang   string
	bundle *sitesearch.Bundle
}

// Generate builds the index, writes it and returns it. Routes without
// resolvable content and locales whose bundle cannot be loaded are skipped
// and reported through progress.
func (b *Builder) Generate(ctx context.Context, progress ProgressFunc) (*sitesearch.Index, error) {
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	routes, err := b.Routes.Routes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading routes: %w", err)
	}
	routes = uniqueRoutes(routes)

	notify(ProgressEvent{Type: ProgressStarted, Total: len(routes)})

	bundles := b.loadBundles(ctx, notify)

	results, err := b.extractAll(ctx, routes)
	if err != nil {
		return nil, err
	}

	var items []*sitesearch.Record
	var paths []string
	for _, res := range results {
		if res.skipped {
			notify(ProgressEvent{Type: ProgressRouteSkipped, Path: res.route.Path, Page: res.route.Page, Error: res.err})
			continue
		}
		items = append(items, b.records(res.route, res.extract, bundles)...)
		paths = append(paths, res.route.Path)
	}

	idx := &sitesearch.Index{
		GeneratedAt: b.now().UTC(),
		Items:       items,
	}
	if idx.Items == nil {
		idx.Items = []*sitesearch.Record{}
	}

	if err := b.Index.WriteIndex(ctx, idx); err != nil {
		return nil, fmt.Errorf("writing index: %w", err)
	}
	if b.Sitemap != nil {
		if err := b.Sitemap.WriteSitemap(ctx, paths); err != nil {
			return nil, fmt.Errorf("writing sitemap: %w", err)
		}
	}

	notify(ProgressEvent{Type: ProgressFinished, Total: len(idx.Items)})
	return idx, nil
}

// loadBundles loads each configured locale's bundle in order, dropping
// locales whose bundle is missing or malformed.
func (b *Builder) loadBundles(ctx context.Context, notify ProgressFunc) []localeBundle {
	var bundles []localeBundle
	for _, lang := range b.Locales {
		if lang == "" || lang == sitesearch.DefaultLang {
			continue
		}
		bundle, err := b.Bundles.FindBundle(ctx, lang)
		if err != nil {
			notify(ProgressEvent{Type: ProgressLocaleSkipped, Lang: lang, Error: err})
			continue
		}
		bundles = append(bundles, localeBundle{lang: lang, bundle: bundle})
	}
	return bundles
}

// extractAll resolves and extracts every route concurrently, returning
// results in route order.
func (b *Builder) extractAll(ctx context.Context, routes []sitesearch.Route) ([]pageResult, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]pageResult, len(routes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, route := range routes {
		g.Go(func() error {
			res, err := b.extract(gctx, route)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *Builder) extract(ctx context.Context, route sitesearch.Route) (pageResult, error) {
	page, err := b.Pages.FindPage(ctx, route.Page)
	if sitesearch.ErrorCode(err) == sitesearch.ENOTFOUND {
		return pageResult{route: route, err: err, skipped: true}, nil
	} else if err != nil {
		return pageResult{}, fmt.Errorf("loading page %q for %s: %w", route.Page, route.Path, err)
	}

	extract, err := b.Extractor.Extract(page.Markup)
	if err != nil {
		return pageResult{route: route, err: err, skipped: true}, nil
	}
	return pageResult{route: route, extract: extract}, nil
}

// records emits the default-locale record for a route followed by one
// record per loaded locale bundle.
func (b *Builder) records(route sitesearch.Route, extract *sitesearch.ExtractResult, bundles []localeBundle) []*sitesearch.Record {
	base := newTagSet()
	base.add(sitesearch.Tokenize(extract.Title)...)
	base.add(b.rules().Tags(extract.Title + " " + extract.Body)...)

	records := []*sitesearch.Record{{
		Path:  route.Path,
		Title: extract.Title,
		Body:  extract.Body,
		Tags:  base.list(),
		Lang:  sitesearch.DefaultLang,
	}}

	field := b.labels()[route.Path]
	for _, lb := range bundles {
		title := extract.Title
		tags := base.clone()
		if label := strings.TrimSpace(lb.bundle.Label(field)); label != "" {
			title = label
			tags.add(strings.ToLower(label))
		}
		records = append(records, &sitesearch.Record{
			Path:  route.Path,
			Title: title,
			Body:  extract.Body,
			Tags:  tags.list(),
			Lang:  lb.lang,
		})
	}
	return records
}

func (b *Builder) rules() sitesearch.SynonymRules {
	if b.Rules != nil {
		return b.Rules
	}
	return sitesearch.TagRules
}

func (b *Builder) labels() map[string]string {
	if b.Labels != nil {
		return b.Labels
	}
	return sitesearch.RouteLabels
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// uniqueRoutes drops routes whose path was already declared.
func uniqueRoutes(routes []sitesearch.Route) []sitesearch.Route {
	seen := make(map[string]bool, len(routes))
	out := routes[:0:0]
	for _, r := range routes {
		if seen[r.Path] {
			continue
		}
		seen[r.Path] = true
		out = append(out, r)
	}
	return out
}

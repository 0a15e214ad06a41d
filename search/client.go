// Package search implements the query-time search client. It ranks an
// in-memory list of index records against free-text queries using
// bidirectional synonym expansion, Levenshtein typo tolerance, intent
// alignment and editorial metadata loaded from static artifacts.
package search

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mosaic-community/sitesearch"
	"golang.org/x/sync/errgroup"
)

// Ensure Client implements sitesearch.Searcher at compile time.
var _ sitesearch.Searcher = (*Client)(nil)

// Client searches a set of index records.
//
// Configuration artifacts are loaded once by Initialize and kept for the
// lifetime of the Client. Items and language are replaced through setters.
type Client struct {
	source sitesearch.ArtifactSource
	rules  sitesearch.SynonymRules

	mu           sync.RWMutex
	loaded       bool
	synonyms     sitesearch.Synonyms
	translations sitesearch.Translations
	metadata     sitesearch.Metadata
	icons        sitesearch.Icons
	items        []*sitesearch.Record
	lang         string
}

// Option configures a Client.
type Option func(*Client)

// WithRules replaces the built-in query synonym rules.
func WithRules(rules sitesearch.SynonymRules) Option {
	return func(c *Client) {
		c.rules = rules
	}
}

// WithItems sets the initial records.
func WithItems(items []*sitesearch.Record) Option {
	return func(c *Client) {
		c.items = items
	}
}

// NewClient creates a Client loading its configuration from source.
// A nil source leaves every dictionary empty.
func NewClient(source sitesearch.ArtifactSource, opts ...Option) *Client {
	c := &Client{
		source:       source,
		rules:        sitesearch.QueryRules,
		synonyms:     sitesearch.Synonyms{},
		translations: sitesearch.Translations{},
		metadata:     sitesearch.Metadata{},
		icons:        sitesearch.Icons{},
		lang:         sitesearch.DefaultLang,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize loads the synonyms, translations, metadata and icons
// artifacts concurrently. An artifact that fails to load is left empty and
// the failure is not reported. Calls after the first completed load do
// nothing; calls racing the first load fetch again and overwrite the same
// dictionaries.
func (c *Client) Initialize(ctx context.Context) {
	if c.Loaded() {
		return
	}

	var (
		synonyms     sitesearch.Synonyms
		translations sitesearch.Translations
		metadata     sitesearch.Metadata
		icons        sitesearch.Icons
	)

	var g errgroup.Group
	g.Go(func() error {
		synonyms, _ = load(ctx, c.source, sitesearch.SynonymsArtifact, decodeJSON[sitesearch.Synonyms])
		return nil
	})
	g.Go(func() error {
		translations, _ = load(ctx, c.source, sitesearch.TranslationsArtifact, decodeJSON[sitesearch.Translations])
		return nil
	})
	g.Go(func() error {
		metadata, _ = load(ctx, c.source, sitesearch.MetadataArtifact, sitesearch.DecodeMetadata)
		return nil
	})
	g.Go(func() error {
		icons, _ = load(ctx, c.source, sitesearch.IconsArtifact, decodeJSON[sitesearch.Icons])
		return nil
	})
	_ = g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.synonyms = orEmpty(synonyms)
	c.translations = orEmpty(translations)
	c.metadata = orEmpty(metadata)
	c.icons = orEmpty(icons)
	c.loaded = true
}

// Loaded reports whether Initialize has completed.
func (c *Client) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// SetLanguage sets the working locale. An empty lang selects DefaultLang.
func (c *Client) SetLanguage(lang string) {
	if lang == "" {
		lang = sitesearch.DefaultLang
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
}

// Language returns the working locale.
func (c *Client) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// SetItems replaces the records searched. A nil list clears them.
func (c *Client) SetItems(items []*sitesearch.Record) {
	if items == nil {
		items = []*sitesearch.Record{}
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Items returns the records searched.
func (c *Client) Items() []*sitesearch.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Icon returns the icon identifier configured for key. Icons are loaded
// for completeness only; nothing in ranking or suggestions reads them.
func (c *Client) Icon(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	icon, ok := c.icons[key]
	return icon, ok
}

// PopularPrompts returns canned example queries.
func (c *Client) PopularPrompts() []string {
	return []string{
		"How can I get help caring for an older parent?",
		"Find employment support near me",
		"Settlement help for new arrivals",
		"Where is my nearest office?",
	}
}

// BuildFacets returns the facet labels applicable to records.
func (c *Client) BuildFacets(records []*sitesearch.Record) []string {
	return sitesearch.BuildFacets(records)
}

// state is a consistent view of the client's data for one query.
type state struct {
	items        []*sitesearch.Record
	synonyms     sitesearch.Synonyms
	translations sitesearch.Translations
	metadata     sitesearch.Metadata
}

func (c *Client) state() state {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return state{
		items:        c.items,
		synonyms:     c.synonyms,
		translations: c.translations,
		metadata:     c.metadata,
	}
}

// load fetches and decodes one artifact. A decode error discards whatever
// was partially decoded.
func load[T any](ctx context.Context, src sitesearch.ArtifactSource, name string, decode func([]byte) (T, error)) (T, error) {
	var zero T
	if src == nil {
		return zero, sitesearch.Errorf(sitesearch.ENOTFOUND, "no artifact source")
	}
	data, err := src.Load(ctx, name)
	if err != nil {
		return zero, err
	}
	v, err := decode(data)
	if err != nil {
		return zero, err
	}
	return v, nil
}

func decodeJSON[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, sitesearch.Errorf(sitesearch.EINVALID, "invalid artifact: %v", err)
	}
	return v, nil
}

func orEmpty[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return M{}
	}
	return m
}

// LoadIndex loads and decodes the index artifact named name from src.
// Records with an empty lang are assigned DefaultLang.
func LoadIndex(ctx context.Context, src sitesearch.ArtifactSource, name string) (*sitesearch.Index, error) {
	idx, err := load(ctx, src, name, decodeJSON[sitesearch.Index])
	if err != nil {
		return nil, err
	}
	for _, r := range idx.Items {
		if r.Lang == "" {
			r.Lang = sitesearch.DefaultLang
		}
	}
	return &idx, nil
}

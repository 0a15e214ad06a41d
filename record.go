package sitesearch

import (
	"context"
	"strings"
	"time"
)

// DefaultLang is the locale of untranslated content.
const DefaultLang = "en"

// Record is one indexed (route, locale) pair. Path alone is not unique;
// records are identified by Path and Lang together.
type Record struct {
	Path  string   `json:"path"`
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
	Lang  string   `json:"lang,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
// An empty Lang is replaced with DefaultLang.
func (r *Record) Validate() error {
	if r.Path == "" {
		return Errorf(EINVALID, "record path required")
	}
	if r.Lang == "" {
		r.Lang = DefaultLang
	}
	return nil
}

// Locale returns the record's lower-cased locale, DefaultLang when unset.
func (r *Record) Locale() string {
	if r.Lang == "" {
		return DefaultLang
	}
	return strings.ToLower(r.Lang)
}

// HasTag reports whether the record carries tag, ignoring case.
func (r *Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Index is the static search index artifact.
type Index struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Items       []*Record `json:"items"`
}

// IndexWriter persists a generated index.
type IndexWriter interface {
	WriteIndex(ctx context.Context, idx *Index) error
}

// SitemapWriter persists the list of site paths as a sitemap.
type SitemapWriter interface {
	WriteSitemap(ctx context.Context, paths []string) error
}

// Result is a ranked record together with its score.
type Result struct {
	Record *Record `json:"record"`
	Score  float64 `json:"score"`
}

// Searcher ranks records against free-text queries.
type Searcher interface {
	// Search returns records matching query, best first.
	// Facets boost records tagged with them.
	Search(query string, facets []string) []*Record

	// Suggestions returns up to five query refinements, led by "All".
	// Returns an empty list for an empty query.
	Suggestions(query string) []string
}

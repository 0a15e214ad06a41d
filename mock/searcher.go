package mock

import "github.com/mosaic-community/sitesearch"

var _ sitesearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of sitesearch.Searcher.
type Searcher struct {
	SearchFn      func(query string, facets []string) []*sitesearch.Record
	SuggestionsFn func(query string) []string
}

func (s *Searcher) Search(query string, facets []string) []*sitesearch.Record {
	return s.SearchFn(query, facets)
}

func (s *Searcher) Suggestions(query string) []string {
	return s.SuggestionsFn(query)
}

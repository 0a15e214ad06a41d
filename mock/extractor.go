package mock

import "github.com/mosaic-community/sitesearch"

var _ sitesearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitesearch.Extractor.
type Extractor struct {
	ExtractFn func(markup string) (*sitesearch.ExtractResult, error)
}

func (e *Extractor) Extract(markup string) (*sitesearch.ExtractResult, error) {
	return e.ExtractFn(markup)
}

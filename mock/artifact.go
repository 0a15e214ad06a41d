package mock

import (
	"context"

	"github.com/mosaic-community/sitesearch"
)

var _ sitesearch.ArtifactSource = (*ArtifactSource)(nil)

// ArtifactSource is a mock implementation of sitesearch.ArtifactSource.
type ArtifactSource struct {
	LoadFn func(ctx context.Context, name string) ([]byte, error)
}

func (s *ArtifactSource) Load(ctx context.Context, name string) ([]byte, error) {
	return s.LoadFn(ctx, name)
}

package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mosaic-community/sitesearch"
)

// Ensure ArtifactDir implements sitesearch.ArtifactSource at compile time.
var _ sitesearch.ArtifactSource = (*ArtifactDir)(nil)

// ArtifactDir loads static artifacts from a directory.
type ArtifactDir struct {
	dir string
}

// NewArtifactDir creates an ArtifactDir rooted at dir.
func NewArtifactDir(dir string) *ArtifactDir {
	return &ArtifactDir{dir: dir}
}

// Load reads the named artifact. Names cannot escape the directory.
func (d *ArtifactDir) Load(ctx context.Context, name string) ([]byte, error) {
	path := filepath.Join(d.dir, filepath.Clean("/"+name))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "artifact %q not found", name)
	}
	return data, err
}

package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mosaic-community/sitesearch"
)

// Ensure BundleDir implements sitesearch.BundleSource at compile time.
var _ sitesearch.BundleSource = (*BundleDir)(nil)

// BundleDir loads translation bundles from <dir>/<lang>.json or
// <dir>/<lang>/translation.json.
type BundleDir struct {
	dir string
}

// NewBundleDir creates a BundleDir rooted at dir.
func NewBundleDir(dir string) *BundleDir {
	return &BundleDir{dir: dir}
}

// FindBundle reads and parses the bundle for lang.
func (d *BundleDir) FindBundle(ctx context.Context, lang string) (*sitesearch.Bundle, error) {
	path, ok := firstExisting(
		filepath.Join(d.dir, lang+".json"),
		filepath.Join(d.dir, lang, "translation.json"),
	)
	if !ok {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "no translation bundle for %q", lang)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b sitesearch.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "malformed translation bundle %s: %v", path, err)
	}
	return &b, nil
}

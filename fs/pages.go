package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mosaic-community/sitesearch"
)

// Ensure PageDir implements sitesearch.PageSource at compile time.
var _ sitesearch.PageSource = (*PageDir)(nil)

// PageExtensions lists the page file extensions tried, in order.
var PageExtensions = []string{".tsx", ".jsx", ".html", ".htm"}

// PageDir resolves page identifiers to files in a directory. Page "About"
// resolves to About.tsx, About.jsx, About.html or About/index.* in that order.
type PageDir struct {
	dir string
}

// NewPageDir creates a PageDir rooted at dir.
func NewPageDir(dir string) *PageDir {
	return &PageDir{dir: dir}
}

// FindPage reads the page's source file.
func (d *PageDir) FindPage(ctx context.Context, id string) (*sitesearch.Page, error) {
	if id == "" || id != filepath.Base(id) {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "page %q not found", id)
	}

	var candidates []string
	for _, ext := range PageExtensions {
		candidates = append(candidates, filepath.Join(d.dir, id+ext))
	}
	for _, ext := range PageExtensions {
		candidates = append(candidates, filepath.Join(d.dir, id, "index"+ext))
	}

	path, ok := firstExisting(candidates...)
	if !ok {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "page %q not found", id)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &sitesearch.Page{ID: id, Source: path, Markup: string(data)}, nil
}

package fs

import (
	"context"
	"strings"

	"github.com/beevik/etree"
	"github.com/mosaic-community/sitesearch"
)

// Ensure SitemapFile implements sitesearch.SitemapWriter at compile time.
var _ sitesearch.SitemapWriter = (*SitemapFile)(nil)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapFile writes a sitemap.xml for the site's routes.
type SitemapFile struct {
	path    string
	siteURL string
}

// NewSitemapFile creates a SitemapFile writing to path, with locations
// rooted at siteURL.
func NewSitemapFile(path, siteURL string) *SitemapFile {
	return &SitemapFile{path: path, siteURL: strings.TrimSuffix(siteURL, "/")}
}

// WriteSitemap writes one <url> entry per path.
func (f *SitemapFile) WriteSitemap(ctx context.Context, paths []string) error {
	data, err := FormatSitemap(f.siteURL, paths)
	if err != nil {
		return err
	}
	return writeFileAtomic(f.path, data)
}

// FormatSitemap renders a sitemap urlset for paths under siteURL.
func FormatSitemap(siteURL string, paths []string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)
	for _, p := range paths {
		loc := urlset.CreateElement("url").CreateElement("loc")
		loc.SetText(strings.TrimSuffix(siteURL, "/") + p)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

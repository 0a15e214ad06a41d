package sitesearch

import (
	"context"
	"strings"
)

// Route maps a site path to the page that renders it.
type Route struct {
	Path string `json:"path" yaml:"path"`
	Page string `json:"page" yaml:"page"`
}

// RouteSource provides the site's route table in declaration order.
type RouteSource interface {
	Routes(ctx context.Context) ([]Route, error)
}

// Page is the raw source of a page definition.
type Page struct {
	ID     string
	Source string // file the markup was read from
	Markup string
}

// PageSource resolves page identifiers to their markup.
type PageSource interface {
	// FindPage returns the page with the given identifier.
	// Returns ENOTFOUND if no content exists for the page.
	FindPage(ctx context.Context, id string) (*Page, error)
}

// ExtractResult holds the searchable text extracted from a page.
type ExtractResult struct {
	// Title is the document title, or the first level-1 heading.
	Title string

	// Body is a de-duplicated bag of visible text and string literals.
	Body string
}

// Extractor pulls searchable text out of page markup.
type Extractor interface {
	Extract(markup string) (*ExtractResult, error)
}

// Bundle holds the parts of a locale's translation resources the index uses.
type Bundle struct {
	Nav      map[string]string `json:"nav"`
	Services map[string]string `json:"services"`
}

// Label returns the translated string for a "section.key" field such as
// "nav.about" or "services.agedCare". Returns "" when absent.
func (b *Bundle) Label(field string) string {
	if b == nil {
		return ""
	}
	if key, ok := strings.CutPrefix(field, "nav."); ok {
		return b.Nav[key]
	}
	if key, ok := strings.CutPrefix(field, "services."); ok {
		return b.Services[key]
	}
	return ""
}

// BundleSource loads locale translation bundles.
type BundleSource interface {
	// FindBundle returns the bundle for lang.
	// Returns ENOTFOUND if the locale has no bundle and EINVALID if it
	// cannot be parsed.
	FindBundle(ctx context.Context, lang string) (*Bundle, error)
}

// RouteLabels maps routes to the translation field holding their label.
var RouteLabels = map[string]string{
	"/":                              "nav.home",
	"/about":                         "nav.about",
	"/services":                      "nav.services",
	"/stories":                       "nav.stories",
	"/resources":                     "nav.resources",
	"/locations":                     "nav.locations",
	"/contact":                       "nav.contact",
	"/get-involved":                  "nav.getInvolved",
	"/donate":                        "nav.donate",
	"/services/settlement":           "services.settlement",
	"/services/aged-care":            "services.agedCare",
	"/services/family-support":       "services.familySupport",
	"/services/community-engagement": "services.communityEngagement",
}

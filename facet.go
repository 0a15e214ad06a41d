package sitesearch

import "strings"

// Facet labels in canonical order.
const (
	FacetServices  = "Services"
	FacetPrograms  = "Programs"
	FacetAbout     = "About Mosaic"
	FacetResources = "Resources"
)

type facetRule struct {
	label    string
	prefixes []string
	tags     []string
}

var facetRules = []facetRule{
	{label: FacetServices, prefixes: []string{"/services"}, tags: []string{"services", "service"}},
	{label: FacetPrograms, prefixes: []string{"/programs", "/get-involved"}, tags: []string{"programs", "program"}},
	{label: FacetAbout, prefixes: []string{"/about"}, tags: []string{"about"}},
	{label: FacetResources, prefixes: []string{"/resources"}, tags: []string{"resources", "forms", "downloads"}},
}

// BuildFacets returns the facet labels applicable to records, judged from
// their paths and tags, in canonical order.
func BuildFacets(records []*Record) []string {
	var facets []string
	for _, rule := range facetRules {
		if rule.matchesAny(records) {
			facets = append(facets, rule.label)
		}
	}
	return facets
}

func (f facetRule) matchesAny(records []*Record) bool {
	for _, r := range records {
		for _, p := range f.prefixes {
			if strings.HasPrefix(r.Path, p) {
				return true
			}
		}
		for _, t := range f.tags {
			if r.HasTag(t) {
				return true
			}
		}
	}
	return false
}

package fs

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/mosaic-community/sitesearch"
)

// Ensure RouteTable implements sitesearch.RouteSource at compile time.
var _ sitesearch.RouteSource = (*RouteTable)(nil)

var (
	// <Route ...> with attribute values that may hold {<Page />} expressions.
	routeTagRe     = regexp.MustCompile(`<Route\b((?:[^>{]|\{[^}]*\})*)>`)
	routePathRe    = regexp.MustCompile(`\bpath\s*=\s*(?:"([^"]*)"|'([^']*)'|\{\s*["']([^"']*)["']\s*\})`)
	routeElementRe = regexp.MustCompile(`\b(?:element\s*=\s*\{\s*<\s*|Component\s*=\s*\{\s*)([A-Z][A-Za-z0-9_]*)`)
)

// RouteTable reads routes from a React Router source file.
type RouteTable struct {
	path string
}

// NewRouteTable creates a RouteTable reading the router file at path.
func NewRouteTable(path string) *RouteTable {
	return &RouteTable{path: path}
}

// Routes parses the router file and returns its routes in source order.
func (t *RouteTable) Routes(ctx context.Context) ([]sitesearch.Route, error) {
	data, err := os.ReadFile(t.path)
	if os.IsNotExist(err) {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "router file %q not found", t.path)
	} else if err != nil {
		return nil, err
	}
	return ParseRoutes(string(data)), nil
}

// ParseRoutes extracts {path, page} pairs from <Route> elements. Routes
// without a path or a component are ignored; relative paths are rooted.
func ParseRoutes(src string) []sitesearch.Route {
	var routes []sitesearch.Route
	for _, m := range routeTagRe.FindAllStringSubmatch(src, -1) {
		attrs := m[1]

		pm := routePathRe.FindStringSubmatch(attrs)
		em := routeElementRe.FindStringSubmatch(attrs)
		if pm == nil || em == nil {
			continue
		}

		path := pm[1] + pm[2] + pm[3]
		if path == "" || path == "*" {
			continue
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		routes = append(routes, sitesearch.Route{Path: path, Page: em[1]})
	}
	return routes
}

// StaticRoutes serves a fixed route table.
type StaticRoutes []sitesearch.Route

// Routes returns the table.
func (r StaticRoutes) Routes(ctx context.Context) ([]sitesearch.Route, error) {
	return r, nil
}

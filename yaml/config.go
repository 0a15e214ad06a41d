// Package yaml loads the index build configuration from YAML files.
package yaml

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mosaic-community/sitesearch"
	"golang.org/x/text/language"
	yamlv3 "gopkg.in/yaml.v3"
)

// Page source formats.
const (
	FormatJSX  = "jsx"
	FormatHTML = "html"
)

// Config describes one index build.
type Config struct {
	SiteURL     string             `yaml:"site_url"`
	Router      string             `yaml:"router"`      // route table source, parsed when Routes is empty
	PagesDir    string             `yaml:"pages_dir"`   // page sources by page id
	LocalesDir  string             `yaml:"locales_dir"` // translation bundles by locale
	Locales     []string           `yaml:"locales"`
	Format      string             `yaml:"format"` // jsx (default) or html
	Output      string             `yaml:"output"`
	Sitemap     string             `yaml:"sitemap"` // optional
	Concurrency int                `yaml:"concurrency"`
	Routes      []sitesearch.Route `yaml:"routes"`
}

// Load reads, defaults and validates the configuration at path. Relative
// paths in the file are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes, defaults and validates configuration data. ${VAR}
// references are replaced with environment values first.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yamlv3.Unmarshal(expandEnvVars(data), &cfg); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "failed to parse config: %v", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = FormatJSX
	}
	if c.Output == "" {
		c.Output = filepath.Join("public", sitesearch.IndexArtifact)
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
}

// Validate checks the configuration and canonicalizes locale codes.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSX, FormatHTML:
	default:
		return sitesearch.Errorf(sitesearch.EINVALID, "format must be %q or %q, got %q", FormatJSX, FormatHTML, c.Format)
	}
	if c.PagesDir == "" {
		return sitesearch.Errorf(sitesearch.EINVALID, "pages_dir is required")
	}
	if c.Router == "" && len(c.Routes) == 0 {
		return sitesearch.Errorf(sitesearch.EINVALID, "router or routes is required")
	}
	for i, r := range c.Routes {
		if r.Path == "" || r.Page == "" {
			return sitesearch.Errorf(sitesearch.EINVALID, "routes[%d] requires path and page", i)
		}
	}
	if len(c.Locales) > 0 && c.LocalesDir == "" {
		return sitesearch.Errorf(sitesearch.EINVALID, "locales_dir is required when locales are set")
	}

	locales := make([]string, 0, len(c.Locales))
	seen := make(map[string]bool)
	for _, l := range c.Locales {
		tag, err := language.Parse(l)
		if err != nil {
			return sitesearch.Errorf(sitesearch.EINVALID, "invalid locale %q", l)
		}
		code := strings.ToLower(tag.String())
		if seen[code] {
			continue
		}
		seen[code] = true
		locales = append(locales, code)
	}
	c.Locales = locales
	return nil
}

// resolve makes relative paths relative to dir.
func (c *Config) resolve(dir string) {
	for _, p := range []*string{&c.Router, &c.PagesDir, &c.LocalesDir, &c.Output, &c.Sitemap} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} with the value of the environment variable.
func expandEnvVars(data []byte) []byte {
	return envVarRe.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envVarRe.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})
}

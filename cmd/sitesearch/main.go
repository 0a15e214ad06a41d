package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mosaic-community/sitesearch"
	"github.com/mosaic-community/sitesearch/fs"
	"github.com/mosaic-community/sitesearch/goquery"
	sitehttp "github.com/mosaic-community/sitesearch/http"
	"github.com/mosaic-community/sitesearch/index"
	"github.com/mosaic-community/sitesearch/jsx"
	"github.com/mosaic-community/sitesearch/search"
	siteslog "github.com/mosaic-community/sitesearch/slog"
	"github.com/mosaic-community/sitesearch/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Artifacts overrides the artifact source used by query commands.
	// Set before calling Run().
	Artifacts sitesearch.ArtifactSource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitesearch"),
		kong.Description("Build and query the site search index."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitesearch --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch strings.Fields(kongCtx.Command())[0] {
	case "build":
		cfg, err := yaml.Load(cli.Build.Config)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: pass --config to point at the build configuration")
			return err
		}
		deps.Builder = newBuilder(cfg, deps.Logger, cli.Debug)
	case "prompts":
		deps.Client = search.NewClient(nil)
	default:
		if err := m.wireClient(cli, deps); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// newBuilder wires an index builder from cfg.
func newBuilder(cfg *yaml.Config, logger *slog.Logger, debug bool) *index.Builder {
	var routes sitesearch.RouteSource = fs.NewRouteTable(cfg.Router)
	if len(cfg.Routes) > 0 {
		routes = fs.StaticRoutes(cfg.Routes)
	}

	var extractor sitesearch.Extractor = jsx.NewExtractor()
	if cfg.Format == yaml.FormatHTML {
		extractor = goquery.NewExtractor()
	}

	var bundles sitesearch.BundleSource = fs.NewBundleDir(cfg.LocalesDir)
	var writer sitesearch.IndexWriter = fs.NewIndexFile(cfg.Output)
	var sitemap sitesearch.SitemapWriter
	if cfg.Sitemap != "" {
		sitemap = fs.NewSitemapFile(cfg.Sitemap, cfg.SiteURL)
	}
	if debug {
		bundles = siteslog.NewLoggingBundleSource(bundles, logger)
		writer = siteslog.NewLoggingIndexWriter(writer, logger)
		if sitemap != nil {
			sitemap = siteslog.NewLoggingSitemapWriter(sitemap, logger)
		}
	}

	return &index.Builder{
		Routes:      routes,
		Pages:       fs.NewPageDir(cfg.PagesDir),
		Extractor:   extractor,
		Bundles:     bundles,
		Index:       writer,
		Sitemap:     sitemap,
		Locales:     cfg.Locales,
		Concurrency: cfg.Concurrency,
	}
}

// wireClient loads the index and artifacts for the query commands.
func (m *Main) wireClient(cli *CLI, deps *Dependencies) error {
	var indexSource, artifacts sitesearch.ArtifactSource
	indexName := sitesearch.IndexArtifact
	switch {
	case cli.BaseURL != "":
		base := strings.TrimSuffix(cli.BaseURL, "/")
		indexSource = sitehttp.NewArtifactSource(base)
		artifacts = sitehttp.NewArtifactSource(base + "/config")
	default:
		indexSource = fs.NewArtifactDir(filepath.Dir(cli.Index))
		indexName = filepath.Base(cli.Index)
		artifacts = fs.NewArtifactDir(cli.ConfigDir)
	}
	if m.Artifacts != nil {
		indexSource, artifacts = m.Artifacts, m.Artifacts
	}
	if cli.Debug {
		indexSource = siteslog.NewLoggingArtifactSource(indexSource, deps.Logger)
		artifacts = siteslog.NewLoggingArtifactSource(artifacts, deps.Logger)
	}

	idx, err := search.LoadIndex(deps.Ctx, indexSource, indexName)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: run 'sitesearch build' first or pass --index")
		return fmt.Errorf("failed to load index: %w", err)
	}

	client := search.NewClient(artifacts, search.WithItems(idx.Items))
	client.Initialize(deps.Ctx)
	client.SetLanguage(cli.Lang)

	deps.Client = client
	deps.Searcher = client
	if cli.Debug {
		deps.Searcher = siteslog.NewLoggingSearcher(client, deps.Logger)
	}
	return nil
}

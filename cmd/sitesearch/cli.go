package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mosaic-community/sitesearch"
	"github.com/mosaic-community/sitesearch/index"
	"github.com/mosaic-community/sitesearch/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Builder  *index.Builder
	Client   *search.Client
	Searcher sitesearch.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug     bool   `help:"Enable debug logging"`
	Index     string `default:"public/search-index.json" help:"Search index file"`
	ConfigDir string `default:"public/config" help:"Directory holding search configuration artifacts"`
	BaseURL   string `name:"base-url" help:"Fetch the index and configuration artifacts from this URL instead"`
	Lang      string `default:"en" help:"Working locale"`

	Build   BuildCmd   `cmd:"" help:"Generate the search index"`
	Search  SearchCmd  `cmd:"" help:"Search the index"`
	Suggest SuggestCmd `cmd:"" help:"Suggest query refinements"`
	Prompts PromptsCmd `cmd:"" help:"List popular example queries"`
	Facets  FacetsCmd  `cmd:"" help:"List facets applicable to a query's results"`
	Related RelatedCmd `cmd:"" help:"List pages related to a page"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Config string `short:"c" default:"sitesearch.yaml" help:"Build configuration file"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string   `arg:"" help:"Search query"`
	Facet  []string `short:"f" help:"Boost records tagged with this facet (repeatable)"`
	Scores bool     `short:"s" help:"Show scores"`
	Limit  int      `short:"n" default:"10" help:"Maximum results to show (0 for all)"`
}

// SuggestCmd is the "suggest" subcommand.
type SuggestCmd struct {
	Query string `arg:"" help:"Partial query"`
}

// PromptsCmd is the "prompts" subcommand.
type PromptsCmd struct{}

// FacetsCmd is the "facets" subcommand.
type FacetsCmd struct {
	Query string `arg:"" optional:"" help:"Search query; all records of the working locale when omitted"`
}

// RelatedCmd is the "related" subcommand.
type RelatedCmd struct {
	Path  string `arg:"" help:"Page path"`
	Limit int    `short:"n" default:"5" help:"Maximum pages to show"`
}

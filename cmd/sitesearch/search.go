package main

import (
	"fmt"

	"github.com/mosaic-community/sitesearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Scores {
		results := deps.Client.Rank(c.Query, c.Facet)
		if len(results) == 0 {
			fmt.Fprintln(deps.Stdout, "No results.")
			return nil
		}
		for i, r := range results {
			if c.Limit > 0 && i == c.Limit {
				break
			}
			fmt.Fprintf(deps.Stdout, "%6.1f  %s  [%s]  %s\n", r.Score, r.Record.Path, r.Record.Locale(), r.Record.Title)
		}
		return nil
	}

	records := deps.Searcher.Search(c.Query, c.Facet)
	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}
	for i, r := range records {
		if c.Limit > 0 && i == c.Limit {
			break
		}
		fmt.Fprintf(deps.Stdout, "%s  [%s]  %s\n", r.Path, r.Locale(), r.Title)
	}
	return nil
}

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	for _, s := range deps.Searcher.Suggestions(c.Query) {
		fmt.Fprintln(deps.Stdout, s)
	}
	return nil
}

// Run executes the prompts command.
func (c *PromptsCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Client.PopularPrompts() {
		fmt.Fprintln(deps.Stdout, p)
	}
	return nil
}

// Run executes the facets command.
func (c *FacetsCmd) Run(deps *Dependencies) error {
	var records []*sitesearch.Record
	if c.Query != "" {
		records = deps.Client.Search(c.Query, nil)
	} else {
		records = inLocale(deps.Client.Items(), deps.Client.Language())
	}
	for _, f := range deps.Client.BuildFacets(records) {
		fmt.Fprintln(deps.Stdout, f)
	}
	return nil
}

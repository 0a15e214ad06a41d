package main

import (
	"fmt"

	"github.com/mosaic-community/sitesearch"
)

// Run executes the related command.
func (c *RelatedCmd) Run(deps *Dependencies) error {
	items := deps.Client.Items()
	lang := deps.Client.Language()

	var rec *sitesearch.Record
	for _, r := range items {
		if r.Path == c.Path && r.Locale() == lang {
			rec = r
			break
		}
	}
	if rec == nil {
		return sitesearch.Errorf(sitesearch.ENOTFOUND, "no %s page at %q", lang, c.Path)
	}

	related := sitesearch.RelatedPages(items, rec, c.Limit)
	if len(related) == 0 {
		fmt.Fprintln(deps.Stdout, "No related pages.")
		return nil
	}
	for _, r := range related {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Path, r.Title)
	}
	return nil
}

func inLocale(records []*sitesearch.Record, lang string) []*sitesearch.Record {
	var out []*sitesearch.Record
	for _, r := range records {
		if r.Locale() == lang {
			out = append(out, r)
		}
	}
	return out
}

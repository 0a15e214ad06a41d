package main

import (
	"fmt"

	"github.com/mosaic-community/sitesearch/index"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	idx, err := deps.Builder.Generate(deps.Ctx, func(e index.ProgressEvent) {
		switch e.Type {
		case index.ProgressStarted:
			deps.Logger.Info("generating index", "routes", e.Total)
		case index.ProgressRouteSkipped:
			deps.Logger.Warn("route skipped", "path", e.Path, "page", e.Page, "err", e.Error)
		case index.ProgressLocaleSkipped:
			deps.Logger.Warn("locale skipped", "lang", e.Lang, "err", e.Error)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d records\n", len(idx.Items))
	return nil
}

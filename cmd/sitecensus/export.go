package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/sitecensus"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	inv, err := deps.Builder.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecensus.ErrorMessage(err))
		return err
	}

	total := inv.Articles.Series.Total()
	if total == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Found %d articles\n", total)

	progress := func(p sitecensus.ExportProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.File, p.Error)
		}
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, p.File)
	}

	res, err := deps.Exporter.Export(deps.Ctx, inv, progress)

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error exporting: %v\n", err)
		return err
	}

	if res.Saved == 0 {
		fmt.Fprintln(deps.Stdout, "No pages saved")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages to %s", res.Saved, filepath.Join(c.Path, c.Name))
	if res.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d skipped)", res.Failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

package main

import (
	"fmt"
	"path"

	"github.com/fwojciec/sitecensus"
	json "github.com/goccy/go-json"
)

// Run executes the sample command.
func (c *SampleCmd) Run(deps *Dependencies) error {
	names := make([]string, 0, len(deps.Catalog.SampleFiles))
	for _, f := range deps.Catalog.SampleFiles {
		names = append(names, path.Join(deps.Catalog.PostDir, f))
	}

	docs, err := deps.Sampler.Sample(deps.Ctx, names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecensus.ErrorMessage(err))
		return err
	}
	if docs == nil {
		docs = []*sitecensus.Document{}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode samples: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

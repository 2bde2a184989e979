package main

import (
	"fmt"
	"os"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	content := deps.Decoder.Decode(raw)

	if c.Title {
		fmt.Fprintln(deps.Stdout, deps.Titles.ExtractTitle(content))
	}
	fmt.Fprintln(deps.Stdout, deps.Text.ExtractText(content))
	return nil
}

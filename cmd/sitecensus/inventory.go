package main

import (
	"fmt"

	"github.com/fwojciec/sitecensus"
)

// Run executes the inventory command.
func (c *InventoryCmd) Run(deps *Dependencies) error {
	b := *deps.Builder
	if c.Sample {
		b.Sampler = deps.Sampler
	}

	fmt.Fprintln(deps.Stdout, "Analyzing site export")

	inv, err := b.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitecensus.ErrorMessage(err))
		return err
	}

	if err := deps.Inventory.WriteInventory(inv); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write inventory to %s: %v\n", c.Output, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nContent inventory saved to: %s\n\n", c.Output)
	fmt.Fprint(deps.Stdout, sitecensus.FormatSummary(inv))
	return nil
}

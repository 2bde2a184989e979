package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/sitecensus"
	"github.com/fwojciec/sitecensus/census"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Catalog   *sitecensus.Catalog
	Builder   *census.Builder
	Sampler   *census.Sampler
	Inventory sitecensus.InventoryWriter
	Exporter  *census.Exporter

	Decoder sitecensus.Decoder
	Text    sitecensus.TextExtractor
	Titles  sitecensus.TitleExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Base    string `short:"b" default:"www.wvec.org.uk" env:"SITECENSUS_BASE" help:"Root directory of the site export"`
	Catalog string `short:"c" env:"SITECENSUS_CATALOG" help:"YAML file overriding the built-in page tables and series rules"`
	Verbose bool   `short:"v" help:"Log every file operation to stderr"`

	Inventory InventoryCmd `cmd:"" help:"Build the content inventory and print a summary"`
	Sample    SampleCmd    `cmd:"" help:"Print the sampled posts as JSON"`
	Extract   ExtractCmd   `cmd:"" help:"Print the plain text of an HTML file"`
	Export    ExportCmd    `cmd:"" help:"Export every inventoried article as markdown"`
}

// InventoryCmd is the "inventory" subcommand.
type InventoryCmd struct {
	Output string `short:"o" default:"content_inventory.json" env:"SITECENSUS_OUTPUT" help:"Path of the inventory JSON file"`
	Sample bool   `short:"s" help:"Sample a few posts for page titles and dates"`
}

// SampleCmd is the "sample" subcommand.
type SampleCmd struct{}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File  string `arg:"" help:"HTML file to extract"`
	Title bool   `short:"t" help:"Print the page title before the text"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Name for the output directory"`
	Path string `short:"p" default:"." env:"SITECENSUS_EXPORT_PATH" help:"Base path for output"`
}

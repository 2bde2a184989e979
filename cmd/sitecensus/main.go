package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitecensus"
	"github.com/fwojciec/sitecensus/census"
	"github.com/fwojciec/sitecensus/fs"
	"github.com/fwojciec/sitecensus/goquery"
	"github.com/fwojciec/sitecensus/html"
	"github.com/fwojciec/sitecensus/htmltomarkdown"
	"github.com/fwojciec/sitecensus/readability"
	cslog "github.com/fwojciec/sitecensus/slog"
	"github.com/fwojciec/sitecensus/trafilatura"
	"github.com/fwojciec/sitecensus/yaml"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitecensus"),
		kong.Description("Inventory and migrate the content of a static site export"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitecensus --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	catalog := sitecensus.DefaultCatalog()
	if cli.Catalog != "" {
		if catalog, err = yaml.LoadCatalog(cli.Catalog); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", sitecensus.ErrorMessage(err))
			return err
		}
	}

	deps := wire(ctx, cli, catalog, logger)
	deps.Stdout = stdout
	deps.Stderr = stderr

	return kongCtx.Run(deps)
}

// wire builds the services for the export rooted at cli.Base.
func wire(ctx context.Context, cli *CLI, catalog *sitecensus.Catalog, logger *slog.Logger) *Dependencies {
	site := os.DirFS(cli.Base)
	decoder := html.NewDecoder()
	text := cslog.NewLoggingTextExtractor(html.NewTextExtractor(), logger)

	sampler := &census.Sampler{
		FS:      site,
		Decoder: decoder,
		Text:    text,
		Titles:  goquery.NewTitleExtractor(),
		Dates:   sitecensus.NewDateScanner(),
		Logger:  logger,
	}

	store := fs.NewFileStore(cli.Export.Path, cli.Export.Name)

	return &Dependencies{
		Ctx:     ctx,
		Logger:  logger,
		Catalog: catalog,
		Builder: &census.Builder{
			FS:      site,
			Catalog: catalog,
			Logger:  logger,
		},
		Sampler:   sampler,
		Inventory: fs.NewInventoryWriter(cli.Inventory.Output),
		Exporter: &census.Exporter{
			FS:      site,
			PostDir: catalog.PostDir,
			Decoder: decoder,
			Extractors: []sitecensus.Extractor{
				cslog.NewLoggingExtractor("trafilatura", trafilatura.NewExtractor(), logger),
				cslog.NewLoggingExtractor("readability", readability.NewExtractor(), logger),
			},
			Converter: htmltomarkdown.NewConverter(),
			Store:     cslog.NewLoggingPageStore(store, logger),
			Logger:    logger,
		},
		Decoder: decoder,
		Text:    text,
		Titles:  goquery.NewTitleExtractor(),
	}
}

// newLogger returns a text logger on w. Warnings and errors are always
// shown; verbose adds per-operation debug lines.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

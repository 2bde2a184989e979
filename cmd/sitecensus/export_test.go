package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/fwojciec/sitecensus"
	"github.com/fwojciec/sitecensus/census"
	main "github.com/fwojciec/sitecensus/cmd/sitecensus"
	"github.com/fwojciec/sitecensus/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportDeps(t *testing.T, files map[string]string, store *mock.PageStore) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	site := os.DirFS(writeSite(t, files))
	catalog := sitecensus.DefaultCatalog()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Catalog: catalog,
		Builder: &census.Builder{FS: site, Catalog: catalog},
		Exporter: &census.Exporter{
			FS:      site,
			PostDir: catalog.PostDir,
			Decoder: &mock.Decoder{DecodeFn: func(raw []byte) string { return string(raw) }},
			Extractors: []sitecensus.Extractor{&mock.Extractor{ExtractFn: func(html string) (*sitecensus.ExtractResult, error) {
				return &sitecensus.ExtractResult{ContentHTML: html}, nil
			}}},
			Converter: &mock.Converter{ConvertFn: func(html string) (string, error) { return html, nil }},
			Store:     store,
		},
	}, stdout, stderr
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves and commits articles", func(t *testing.T) {
		t.Parallel()

		var saved []string
		committed := false
		store := &mock.PageStore{
			SaveFn: func(_ context.Context, p *sitecensus.Page) error {
				saved = append(saved, p.Path)
				return nil
			},
			CommitFn: func() error { committed = true; return nil },
			AbortFn:  func() error { return nil },
		}
		deps, stdout, _ := exportDeps(t, map[string]string{
			"post/ephesians-5-1.html": "<p>Followers</p>",
			"post/random-topic.html":  "<p>Other</p>",
		}, store)

		err := (&main.ExportCmd{Name: "site", Path: "out"}).Run(deps)

		require.NoError(t, err)
		assert.True(t, committed)
		assert.Equal(t, []string{"ephesians/ephesians-5-1.md", "standalone/random-topic.md"}, saved)
		assert.Contains(t, stdout.String(), "Found 2 articles")
		assert.Contains(t, stdout.String(), "Saved 2 pages to out/site")
	})

	t.Run("reports skipped articles", func(t *testing.T) {
		t.Parallel()

		store := &mock.PageStore{
			SaveFn:   func(context.Context, *sitecensus.Page) error { return nil },
			CommitFn: func() error { return nil },
			AbortFn:  func() error { return nil },
		}
		deps, stdout, stderr := exportDeps(t, map[string]string{
			"post/ephesians-5-1.html": "<p>Followers</p>",
			"post/random-topic.html":  "",
		}, store)

		err := (&main.ExportCmd{Name: "site", Path: "out"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip random-topic.html")
		assert.Contains(t, stdout.String(), "Saved 1 pages to out/site (1 skipped)")
	})

	t.Run("no articles", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := exportDeps(t, map[string]string{}, &mock.PageStore{})

		err := (&main.ExportCmd{Name: "site"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No articles found\n", stdout.String())
	})

	t.Run("store failure is returned", func(t *testing.T) {
		t.Parallel()

		aborted := false
		store := &mock.PageStore{
			SaveFn:  func(context.Context, *sitecensus.Page) error { return errors.New("disk full") },
			AbortFn: func() error { aborted = true; return nil },
		}
		deps, _, stderr := exportDeps(t, map[string]string{
			"post/ephesians-5-1.html": "<p>Followers</p>",
		}, store)

		err := (&main.ExportCmd{Name: "site"}).Run(deps)

		require.Error(t, err)
		assert.True(t, aborted)
		assert.Contains(t, stderr.String(), "error exporting")
	})
}

func TestInventoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("write failure is returned", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Builder: &census.Builder{FS: os.DirFS(t.TempDir()), Catalog: sitecensus.DefaultCatalog()},
			Inventory: &mock.InventoryWriter{WriteInventoryFn: func(*sitecensus.Inventory) error {
				return errors.New("read-only file system")
			}},
		}

		err := (&main.InventoryCmd{Output: "inventory.json"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "failed to write inventory to inventory.json")
		assert.NotContains(t, stdout.String(), "Content Summary")
	})

	t.Run("writes the built inventory", func(t *testing.T) {
		t.Parallel()

		var written *sitecensus.Inventory
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Builder: &census.Builder{FS: os.DirFS(writeSite(t, map[string]string{"post/ephesians-1.html": "x"})), Catalog: sitecensus.DefaultCatalog()},
			Inventory: &mock.InventoryWriter{WriteInventoryFn: func(inv *sitecensus.Inventory) error {
				written = inv
				return nil
			}},
		}

		err := (&main.InventoryCmd{Output: "inventory.json"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, written)
		assert.Equal(t, 1, written.Articles.Series.Total())
		assert.Nil(t, written.Samples)
	})
}

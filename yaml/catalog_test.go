package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitecensus"
	"github.com/fwojciec/sitecensus/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("empty document yields defaults", func(t *testing.T) {
		t.Parallel()

		catalog, err := yaml.ParseCatalog(nil)

		require.NoError(t, err)
		assert.Equal(t, sitecensus.DefaultCatalog(), catalog)
	})

	t.Run("overrides listed tables only", func(t *testing.T) {
		t.Parallel()

		doc := `
post_dir: articles
series_rules:
  - substring: romans
    label: Romans
  - substring: psalm
    label: Psalms
fallback_series: Other
`
		catalog, err := yaml.ParseCatalog([]byte(doc))

		require.NoError(t, err)
		assert.Equal(t, "articles", catalog.PostDir)
		assert.Equal(t, []sitecensus.SeriesRule{
			{Substring: "romans", Label: "Romans"},
			{Substring: "psalm", Label: "Psalms"},
		}, catalog.SeriesRules)
		assert.Equal(t, "Other", catalog.FallbackSeries)
		assert.Equal(t, sitecensus.DefaultCatalog().BookStudies, catalog.BookStudies)
		assert.Equal(t, "*.html", catalog.PostPattern)
	})

	t.Run("reads well-known page tables", func(t *testing.T) {
		t.Parallel()

		doc := `
book_studies:
  - file: galatians.html
    label: Galatians
`
		catalog, err := yaml.ParseCatalog([]byte(doc))

		require.NoError(t, err)
		assert.Equal(t, []sitecensus.CatalogEntry{{File: "galatians.html", Label: "Galatians"}}, catalog.BookStudies)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseCatalog([]byte("post_directory: post\n"))

		require.Error(t, err)
		assert.Equal(t, sitecensus.EINVALID, sitecensus.ErrorCode(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseCatalog([]byte("series_rules: [unclosed\n"))

		require.Error(t, err)
		assert.Equal(t, sitecensus.EINVALID, sitecensus.ErrorCode(err))
	})

	t.Run("validates the result", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseCatalog([]byte("post_pattern: \"[\"\n"))

		require.Error(t, err)
		assert.Equal(t, sitecensus.EINVALID, sitecensus.ErrorCode(err))
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("loads file from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("post_dir: blog\n"), 0644))

		catalog, err := yaml.LoadCatalog(path)

		require.NoError(t, err)
		assert.Equal(t, "blog", catalog.PostDir)
	})

	t.Run("missing file returns not found", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Equal(t, sitecensus.ENOTFOUND, sitecensus.ErrorCode(err))
	})
}

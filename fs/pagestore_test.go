package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/fwojciec/sitecensus"
	"github.com/fwojciec/sitecensus/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Export Storage
// The store uses a temp directory for atomic updates

func testPage() *sitecensus.Page {
	return &sitecensus.Page{
		Path:    "salvation-in-isaiah/salvation-in-isaiah-chapter-1.md",
		Source:  "salvation-in-isaiah-chapter-1.html",
		Title:   "Salvation in Isaiah: Chapter 1",
		Series:  "Salvation in Isaiah",
		Content: "# Chapter 1\n\nCome now, and let us reason together.",
	}
}

func newStore(base string) *fs.FileStore {
	store := fs.NewFileStore(base, "output")
	store.Now = func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }
	return store
}

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := newStore(base)

	// When I save a page
	err := store.Save(context.Background(), testPage())

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	tempPath := filepath.Join(base, "output.tmp", "salvation-in-isaiah", "salvation-in-isaiah-chapter-1.md")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	// And final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "output"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given a store with saved pages
	base := t.TempDir()
	store := newStore(base)
	require.NoError(t, store.Save(context.Background(), testPage()))

	// When I commit
	err := store.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And final directory exists with content
	finalPath := filepath.Join(base, "output", "salvation-in-isaiah", "salvation-in-isaiah-chapter-1.md")
	_, err = os.Stat(finalPath)
	require.NoError(t, err, "file should exist in final directory after commit")

	// And temp directory is gone
	_, err = os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitReplacesPreviousExport(t *testing.T) {
	t.Parallel()

	// Given a previous export with a page that no longer exists
	base := t.TempDir()
	stale := filepath.Join(base, "output", "old.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	store := newStore(base)
	require.NoError(t, store.Save(context.Background(), testPage()))

	// When I commit
	require.NoError(t, store.Commit())

	// Then the stale page is gone
	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale page should be removed by commit")
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with saved pages
	base := t.TempDir()
	store := newStore(base)
	require.NoError(t, store.Save(context.Background(), testPage()))

	// When I abort
	err := store.Abort()

	// Then no error occurs
	require.NoError(t, err)

	// And temp directory is cleaned up
	_, err = os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And final directory doesn't exist
	_, err = os.Stat(filepath.Join(base, "output"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_IncludesFrontmatter(t *testing.T) {
	t.Parallel()

	// Given a saved and committed page
	base := t.TempDir()
	store := newStore(base)
	page := testPage()
	page.Author = "Pastor"
	page.Date = time.Date(2022, 3, 6, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(context.Background(), page))
	require.NoError(t, store.Commit())

	// When I read the file
	f, err := os.Open(filepath.Join(base, "output", filepath.FromSlash(page.Path)))
	require.NoError(t, err)
	defer f.Close()

	var meta struct {
		Source   string `yaml:"source"`
		Title    string `yaml:"title"`
		Series   string `yaml:"series"`
		Author   string `yaml:"author"`
		Date     string `yaml:"date"`
		Exported string `yaml:"exported"`
	}
	body, err := frontmatter.Parse(f, &meta)
	require.NoError(t, err)

	// Then it has YAML frontmatter, with the colon in the title preserved
	assert.Equal(t, "salvation-in-isaiah-chapter-1.html", meta.Source)
	assert.Equal(t, "Salvation in Isaiah: Chapter 1", meta.Title)
	assert.Equal(t, "Salvation in Isaiah", meta.Series)
	assert.Equal(t, "Pastor", meta.Author)
	assert.Equal(t, "2022-03-06", meta.Date)
	assert.Equal(t, "2026-10-19", meta.Exported)

	// And content follows the frontmatter
	assert.Contains(t, string(body), "Come now, and let us reason together.")
}

func TestFormatPage_OmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	page := &sitecensus.Page{
		Path:    "standalone/random-topic.md",
		Source:  "random-topic.html",
		Title:   "Random Topic",
		Content: "Body",
	}

	got, err := fs.FormatPage(page, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	want := `---
source: random-topic.html
title: Random Topic
exported: "2026-10-19"
---

Body
`
	assert.Equal(t, want, got)
	assert.False(t, strings.Contains(got, "author:"))
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	// Given a store
	store := newStore(t.TempDir())

	// When I try to save a page with path traversal
	page := testPage()
	page.Path = "../../../etc/passwd"
	err := store.Save(context.Background(), page)

	// Then an error is returned
	require.Error(t, err, "path traversal should be rejected")
	assert.Equal(t, sitecensus.EINVALID, sitecensus.ErrorCode(err))
	assert.Contains(t, sitecensus.ErrorMessage(err), "path traversal")
}

func TestFileStore_ValidatesPage(t *testing.T) {
	t.Parallel()

	store := newStore(t.TempDir())

	err := store.Save(context.Background(), &sitecensus.Page{Title: "No path"})

	require.Error(t, err)
	assert.Equal(t, sitecensus.EINVALID, sitecensus.ErrorCode(err))
}

package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/sitecensus"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements sitecensus.PageStore at compile time.
var _ sitecensus.PageStore = (*FileStore)(nil)

// FileStore implements sitecensus.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string

	// Now stamps the export date into frontmatter. Defaults to time.Now.
	Now func() time.Time
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		Now:     time.Now,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *FileStore) Save(ctx context.Context, page *sitecensus.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	relPath := filepath.FromSlash(page.Path)
	if !filepath.IsLocal(relPath) {
		return sitecensus.Errorf(sitecensus.EINVALID, "path traversal in page path %q", page.Path)
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page, s.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// frontmatter is the YAML header written above each exported page.
type frontmatter struct {
	Source   string `yaml:"source"`
	Title    string `yaml:"title"`
	Series   string `yaml:"series,omitempty"`
	Author   string `yaml:"author,omitempty"`
	Date     string `yaml:"date,omitempty"`
	Exported string `yaml:"exported"`
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *sitecensus.Page, exported time.Time) (string, error) {
	fm := frontmatter{
		Source:   page.Source,
		Title:    page.Title,
		Series:   page.Series,
		Author:   page.Author,
		Exported: exported.Format("2006-01-02"),
	}
	if !page.Date.IsZero() {
		fm.Date = page.Date.Format("2006-01-02")
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(page.Content)
	b.WriteString("\n")
	return b.String(), nil
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

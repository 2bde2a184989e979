package census

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/fwojciec/sitecensus"
)

// Builder assembles an Inventory from a site export.
type Builder struct {
	// FS is rooted at the export's base directory.
	FS      fs.FS
	Catalog *sitecensus.Catalog

	// Sampler, when set, enriches the inventory with sampled documents.
	Sampler *Sampler

	Logger *slog.Logger
}

// Build walks the export and returns a fresh inventory. Configured pages
// that are missing are skipped, and a missing base or post directory yields
// empty sections. Errors are returned only for an invalid catalog or a
// canceled context.
func (b *Builder) Build(ctx context.Context) (*sitecensus.Inventory, error) {
	if err := b.Catalog.Validate(); err != nil {
		return nil, err
	}

	inv := sitecensus.NewInventory()
	c := b.Catalog

	for _, e := range b.present(c.AnnualPages) {
		inv.BibleStudies.AnnualPages = append(inv.BibleStudies.AnnualPages, annualPage(e))
	}
	for _, e := range b.present(c.BookStudies) {
		inv.BibleStudies.BookStudies = append(inv.BibleStudies.BookStudies, sitecensus.BookStudy{
			File: e.File,
			Book: e.Label,
			Type: sitecensus.EntryTypeBookStudy,
		})
	}
	for _, e := range b.present(c.TopicalStudies) {
		inv.BibleStudies.TopicalStudies = append(inv.BibleStudies.TopicalStudies, sitecensus.TopicalStudy{
			File:  e.File,
			Topic: e.Label,
			Type:  sitecensus.EntryTypeTopicalStudy,
		})
	}

	inv.Sermons.Audio = append(inv.Sermons.Audio, sermonPages(b.present(c.SermonAudio))...)
	inv.Sermons.Text = append(inv.Sermons.Text, sermonPages(b.present(c.SermonText))...)
	inv.Sermons.LordsDay = append(inv.Sermons.LordsDay, sermonPages(b.present(c.LordsDay))...)
	for _, e := range b.present(c.SermonArchives) {
		inv.Sermons.ArchivePages = append(inv.Sermons.ArchivePages, annualPage(e))
	}

	series, err := b.classifyPosts(ctx)
	if err != nil {
		return nil, err
	}
	inv.Articles.Series = series

	if b.Sampler != nil && len(c.SampleFiles) > 0 {
		names := make([]string, 0, len(c.SampleFiles))
		for _, f := range c.SampleFiles {
			names = append(names, path.Join(c.PostDir, f))
		}
		docs, err := b.Sampler.Sample(ctx, names)
		if err != nil {
			return nil, err
		}
		if len(docs) > 0 {
			inv.Samples = docs
		}
	}

	return inv, nil
}

// Posts returns the post paths, relative to the base directory, that the
// catalog inventories: the post glob minus excluded utility pages, sorted.
func (b *Builder) Posts() ([]string, error) {
	c := b.Catalog
	matches, err := fs.Glob(b.FS, path.Join(c.PostDir, c.PostPattern))
	if err != nil {
		return nil, sitecensus.Errorf(sitecensus.EINVALID, "invalid post pattern %q: %v", c.PostPattern, err)
	}
	sort.Strings(matches)

	posts := matches[:0]
	for _, m := range matches {
		if c.Excluded(path.Base(m)) {
			continue
		}
		posts = append(posts, m)
	}
	return posts, nil
}

// classifyPosts buckets every post into a series. Series appear in the
// order their first post is encountered; posts within a series are sorted
// by filename.
func (b *Builder) classifyPosts(ctx context.Context) (sitecensus.SeriesList, error) {
	posts, err := b.Posts()
	if err != nil {
		return nil, err
	}

	classifier := b.Catalog.Classifier()
	series := sitecensus.SeriesList{}

	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := path.Base(p)
		stem := sitecensus.Stem(name)
		label := classifier.Classify(stem)

		s := series.Find(label)
		if s == nil {
			s = &sitecensus.Series{
				Label:    label,
				Fallback: label == b.Catalog.FallbackSeries,
			}
			series = append(series, s)
		}
		s.Articles = append(s.Articles, sitecensus.Article{
			File:  name,
			Title: sitecensus.TitleFromStem(stem),
		})
	}

	for _, s := range series {
		slices.SortStableFunc(s.Articles, func(x, y sitecensus.Article) int {
			return strings.Compare(x.File, y.File)
		})
	}

	b.logger().Debug("posts classified", "posts", len(posts), "series", len(series))

	return series, nil
}

// present returns the entries whose file exists under the base directory.
func (b *Builder) present(entries []sitecensus.CatalogEntry) []sitecensus.CatalogEntry {
	var out []sitecensus.CatalogEntry
	for _, e := range entries {
		if _, err := fs.Stat(b.FS, e.File); err != nil {
			b.logger().Debug("well-known page missing", "file", e.File)
			continue
		}
		out = append(out, e)
	}
	return out
}

func (b *Builder) logger() *slog.Logger {
	return discard(b.Logger)
}

func annualPage(e sitecensus.CatalogEntry) sitecensus.AnnualPage {
	return sitecensus.AnnualPage{
		File: e.File,
		Year: e.Label,
		URL:  pageURL(e.File),
	}
}

func sermonPages(entries []sitecensus.CatalogEntry) []sitecensus.SermonPage {
	pages := make([]sitecensus.SermonPage, 0, len(entries))
	for _, e := range entries {
		pages = append(pages, sitecensus.SermonPage{
			File:  e.File,
			Label: e.Label,
			URL:   pageURL(e.File),
		})
	}
	return pages
}

// pageURL maps an exported filename to its path on the old site.
func pageURL(file string) string {
	return "/" + sitecensus.Stem(file)
}

package sitecensus

import (
	"path"
	"strings"
)

// CatalogEntry maps a well-known filename to a display label.
type CatalogEntry struct {
	File  string `yaml:"file"`
	Label string `yaml:"label"`
}

// Catalog holds the static tables that describe a site export: the
// well-known pages, where the posts live, and how posts are classified.
// It is injected into the builder rather than read from globals.
type Catalog struct {
	AnnualPages    []CatalogEntry `yaml:"annual_pages"`
	BookStudies    []CatalogEntry `yaml:"book_studies"`
	TopicalStudies []CatalogEntry `yaml:"topical_studies"`

	SermonAudio    []CatalogEntry `yaml:"sermon_audio"`
	SermonText     []CatalogEntry `yaml:"sermon_text"`
	LordsDay       []CatalogEntry `yaml:"lords_day"`
	SermonArchives []CatalogEntry `yaml:"sermon_archives"`

	PostDir       string   `yaml:"post_dir"`
	PostPattern   string   `yaml:"post_pattern"`
	ExcludedPosts []string `yaml:"excluded_posts"`

	SeriesRules    []SeriesRule `yaml:"series_rules"`
	FallbackSeries string       `yaml:"fallback_series"`

	SampleFiles []string `yaml:"sample_files"`
}

// DefaultCatalog returns the tables for the www.wvec.org.uk export.
func DefaultCatalog() *Catalog {
	return &Catalog{
		AnnualPages: []CatalogEntry{
			{File: "bible-studies-2021.html", Label: "2021"},
			{File: "bible-studies-2022.html", Label: "2022"},
			{File: "bible-studies-2023.html", Label: "2023"},
		},
		BookStudies: []CatalogEntry{
			{File: "colossians.html", Label: "Colossians"},
			{File: "copy-of-jude-a-warning-to-god-s-peo.html", Label: "Jude"},
			{File: "copy-of-leviticus.html", Label: "Leviticus"},
			{File: "copy-of-numbers.html", Label: "Numbers"},
			{File: "copy-of-philippians.html", Label: "Philippians"},
			{File: "copy-of-romans.html", Label: "Romans"},
		},
		TopicalStudies: []CatalogEntry{
			{File: "attributes-of-christ.html", Label: "Attributes of Christ"},
			{File: "attributes-of-god.html", Label: "Attributes of God"},
			{File: "copy-of-heaven.html", Label: "Heaven"},
			{File: "copy-of-holiness-the-life-of-christ.html", Label: "Holiness - The Life of Christ"},
			{File: "adoniram-judson.html", Label: "Adoniram Judson"},
		},
		SermonAudio: []CatalogEntry{
			{File: "listen.html", Label: "Listen"},
		},
		SermonText: []CatalogEntry{
			{File: "read.html", Label: "Read"},
		},
		LordsDay: []CatalogEntry{
			{File: "lords-day-bible-readings.html", Label: "Lord's Day Bible Readings"},
		},
		SermonArchives: []CatalogEntry{
			{File: "sermons.html", Label: "current"},
			{File: "sermons-2021.html", Label: "2021"},
			{File: "sermons-2022.html", Label: "2022"},
			{File: "sermons-2023.html", Label: "2023"},
		},
		PostDir:     "post",
		PostPattern: "*.html",
		ExcludedPosts: []string{
			"feed.html",
			"sitemap.html",
			"robots.html",
			"c.html",
			"t.html",
			"decodeURIComponent(e.html",
		},
		SeriesRules:    DefaultSeriesRules(),
		FallbackSeries: "Standalone",
		SampleFiles: []string{
			"salvation-in-isaiah-chapter-1.html",
			"matthew-6-v-9-our-father.html",
			"1-thessalonians-1-v-1-grace-be-unto-you-and-peace-from-god-our-father-and-the-lord-jesus-christ.html",
			"the-true-nature-of-a-gospel-church-1.html",
		},
	}
}

// Validate returns an error if the catalog cannot drive a build.
func (c *Catalog) Validate() error {
	if c.PostPattern == "" {
		return Errorf(EINVALID, "catalog post pattern required")
	}
	if _, err := path.Match(c.PostPattern, ""); err != nil {
		return Errorf(EINVALID, "invalid post pattern %q: %v", c.PostPattern, err)
	}
	if c.FallbackSeries == "" {
		return Errorf(EINVALID, "catalog fallback series required")
	}
	for i, r := range c.SeriesRules {
		if r.Substring == "" || r.Label == "" {
			return Errorf(EINVALID, "series rule %d requires substring and label", i)
		}
	}
	return nil
}

// Excluded reports whether a post filename is a utility page that should
// not be inventoried.
func (c *Catalog) Excluded(name string) bool {
	for _, ex := range c.ExcludedPosts {
		if ex == name {
			return true
		}
	}
	return false
}

// Classifier returns the classifier described by the catalog.
func (c *Catalog) Classifier() *Classifier {
	return &Classifier{Rules: c.SeriesRules, Fallback: c.FallbackSeries}
}

// Stem returns the filename without its final extension.
func Stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

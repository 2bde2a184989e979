package sitecensus

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Entry types written for well-known pages.
const (
	EntryTypeBookStudy    = "book_study"
	EntryTypeTopicalStudy = "topical_study"
)

// Inventory is the categorized summary of a site export. It is rebuilt from
// scratch on every run.
type Inventory struct {
	BibleStudies BibleStudies `json:"bible_studies"`
	Sermons      Sermons      `json:"sermons"`
	Articles     Articles     `json:"articles"`
	Samples      []*Document  `json:"samples,omitempty"`
}

// NewInventory returns an inventory whose buckets are empty but non-nil, so
// they serialize as [] rather than null.
func NewInventory() *Inventory {
	return &Inventory{
		BibleStudies: BibleStudies{
			AnnualPages:    []AnnualPage{},
			TopicalStudies: []TopicalStudy{},
			BookStudies:    []BookStudy{},
		},
		Sermons: Sermons{
			Audio:        []SermonPage{},
			Text:         []SermonPage{},
			LordsDay:     []SermonPage{},
			ArchivePages: []AnnualPage{},
		},
		Articles: Articles{
			Series: SeriesList{},
		},
	}
}

// BibleStudies groups the bible study pages.
type BibleStudies struct {
	AnnualPages    []AnnualPage   `json:"annual_pages"`
	TopicalStudies []TopicalStudy `json:"topical_studies"`
	BookStudies    []BookStudy    `json:"book_studies"`
}

// AnnualPage is a yearly archive page.
type AnnualPage struct {
	File string `json:"file"`
	Year string `json:"year"`
	URL  string `json:"url"`
}

// BookStudy is a study page covering one book of the bible.
type BookStudy struct {
	File string `json:"file"`
	Book string `json:"book"`
	Type string `json:"type"`
}

// TopicalStudy is a study page covering a topic.
type TopicalStudy struct {
	File  string `json:"file"`
	Topic string `json:"topic"`
	Type  string `json:"type"`
}

// Sermons groups the sermon pages.
type Sermons struct {
	Audio        []SermonPage `json:"audio"`
	Text         []SermonPage `json:"text"`
	LordsDay     []SermonPage `json:"lords_day"`
	ArchivePages []AnnualPage `json:"archive_pages"`
}

// SermonPage is a well-known sermon listing page.
type SermonPage struct {
	File  string `json:"file"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Articles groups the blog posts by series.
type Articles struct {
	Series SeriesList `json:"series"`
}

// Article is a single blog post.
type Article struct {
	File  string `json:"file"`
	Title string `json:"title"`
}

// Series is a bucket of articles sharing a filename substring.
type Series struct {
	Label    string
	Articles []Article

	// Fallback marks the bucket holding posts no rule matched.
	Fallback bool
}

// SeriesList is an insertion-ordered set of series. It serializes as a JSON
// object keyed by label, preserving order.
type SeriesList []*Series

// Find returns the series with the given label, or nil.
func (l SeriesList) Find(label string) *Series {
	for _, s := range l {
		if s.Label == label {
			return s
		}
	}
	return nil
}

// Total returns the number of articles across all series.
func (l SeriesList) Total() int {
	var n int
	for _, s := range l {
		n += len(s.Articles)
	}
	return n
}

// MarshalJSON writes the series as an object in list order.
func (l SeriesList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Label)
		if err != nil {
			return nil, err
		}
		articles := s.Articles
		if articles == nil {
			articles = []Article{}
		}
		val, err := json.Marshal(articles)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// InventoryWriter persists an inventory as the output artifact.
type InventoryWriter interface {
	WriteInventory(inv *Inventory) error
}

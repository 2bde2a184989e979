package sitecensus

// HasContentThreshold is the size in bytes above which a sampled page is
// considered to carry real content rather than an empty template.
const HasContentThreshold = 1000

// Document represents a single exported HTML page and the signals derived
// from it.
type Document struct {
	Filename      string   `json:"filename"`
	Title         string   `json:"title"`
	PageTitle     string   `json:"page_title,omitempty"`
	Size          int      `json:"file_size"`
	HasContent    bool     `json:"has_content"`
	ContentHash   string   `json:"content_hash,omitempty"`
	PossibleDates []string `json:"possible_dates,omitempty"`

	// Text is the extracted plain text. It is not written to the inventory.
	Text string `json:"-"`
}

// TextExtractor converts markup into whitespace-joined plain text.
type TextExtractor interface {
	// ExtractText returns the text nodes of markup joined by single spaces.
	// Text inside script and style elements is discarded.
	ExtractText(markup string) string
}

// TitleExtractor reads the human-facing title of an HTML page.
type TitleExtractor interface {
	// ExtractTitle returns the page title, or "" when none is found.
	ExtractTitle(markup string) string
}

// Decoder turns raw file bytes into text.
type Decoder interface {
	// Decode never fails; undecodable bytes are dropped.
	Decode(raw []byte) string
}

package mock

import "github.com/fwojciec/sitecensus"

var (
	_ sitecensus.Extractor      = (*Extractor)(nil)
	_ sitecensus.TextExtractor  = (*TextExtractor)(nil)
	_ sitecensus.TitleExtractor = (*TitleExtractor)(nil)
	_ sitecensus.Decoder        = (*Decoder)(nil)
)

// Extractor is a mock implementation of sitecensus.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitecensus.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitecensus.ExtractResult, error) {
	return e.ExtractFn(html)
}

// TextExtractor is a mock implementation of sitecensus.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(markup string) string
}

func (e *TextExtractor) ExtractText(markup string) string {
	return e.ExtractTextFn(markup)
}

// TitleExtractor is a mock implementation of sitecensus.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(markup string) string
}

func (e *TitleExtractor) ExtractTitle(markup string) string {
	return e.ExtractTitleFn(markup)
}

// Decoder is a mock implementation of sitecensus.Decoder.
type Decoder struct {
	DecodeFn func(raw []byte) string
}

func (d *Decoder) Decode(raw []byte) string {
	return d.DecodeFn(raw)
}

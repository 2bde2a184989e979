// Package html implements plain-text extraction and byte decoding on top of
// golang.org/x/net/html.
package html

import (
	"strings"

	"github.com/fwojciec/sitecensus"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements sitecensus.TextExtractor at compile time.
var _ sitecensus.TextExtractor = (*TextExtractor)(nil)

// TextExtractor scans markup with a tokenizer and keeps the text that is not
// inside script or style elements.
//
// The two flags are not depth-counted: a second <script> start tag does not
// need a second end tag, and an unterminated <script> or <style> hides the
// rest of the document.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the trimmed, non-empty text nodes of markup joined by
// single spaces.
func (e *TextExtractor) ExtractText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))

	var (
		parts    []string
		inScript bool
		inStyle  bool
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a read error; either way the input is exhausted.
			return strings.Join(parts, " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			default:
				// Only script and style hold raw text. The tokenizer would
				// otherwise return the markup inside noscript, iframe, xmp
				// and friends as a single text node.
				z.NextIsNotRawText()
			}
		case html.SelfClosingTagToken:
			// The tokenizer treats <script/> as opening raw text; an empty
			// element has no content to skip.
			if name, _ := z.TagName(); isRawTextTag(name) {
				z.NextIsNotRawText()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}
		case html.TextToken:
			if inScript || inStyle {
				continue
			}
			if text := strings.TrimSpace(string(z.Text())); text != "" {
				parts = append(parts, text)
			}
		}
	}
}

func isRawTextTag(name []byte) bool {
	return string(name) == "script" || string(name) == "style"
}

package html

import (
	"bytes"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/sitecensus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure Decoder implements sitecensus.Decoder at compile time.
var _ sitecensus.Decoder = (*Decoder)(nil)

// prescanLimit is how far into a page a <meta> charset is looked for.
const prescanLimit = 1024

// Decoder converts exported page bytes to UTF-8 text on a best-effort basis.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode returns raw as text. Valid UTF-8 is returned unchanged. Otherwise a
// charset declared by a byte order mark or a <meta> tag is honored. Pages
// that declare nothing, or claim UTF-8 but are not, have their invalid bytes
// dropped.
func (d *Decoder) Decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	enc, name, certain := charset.DetermineEncoding(raw, "")
	if !certain {
		label := metaCharset(raw)
		if label == "" {
			return strings.ToValidUTF8(string(raw), "")
		}
		if enc, name = charset.Lookup(label); enc == nil {
			return strings.ToValidUTF8(string(raw), "")
		}
	}

	// A <meta> tag cannot meaningfully declare UTF-16; the page is ASCII
	// compatible if the tag was readable at all.
	if name != "utf-8" && (certain || !strings.HasPrefix(name, "utf-16")) {
		if out, err := enc.NewDecoder().Bytes(raw); err == nil {
			return string(out)
		}
	}

	return strings.ToValidUTF8(string(raw), "")
}

// metaCharset returns the charset label declared by a <meta charset> or
// <meta http-equiv="Content-Type"> tag near the start of raw, or "".
func metaCharset(raw []byte) string {
	if len(raw) > prescanLimit {
		raw = raw[:prescanLimit]
	}

	z := html.NewTokenizer(bytes.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "meta" || !hasAttr {
				continue
			}
			if label := metaTagCharset(z); label != "" {
				return label
			}
		}
	}
}

// metaTagCharset reads the charset from the attributes of the current meta tag.
func metaTagCharset(z *html.Tokenizer) string {
	var content string
	var httpEquiv bool
	for {
		key, val, more := z.TagAttr()
		switch string(key) {
		case "charset":
			return strings.TrimSpace(string(val))
		case "http-equiv":
			httpEquiv = strings.EqualFold(string(val), "content-type")
		case "content":
			content = string(val)
		}
		if !more {
			break
		}
	}
	if !httpEquiv || content == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(content)
	if err != nil {
		return ""
	}
	return params["charset"]
}

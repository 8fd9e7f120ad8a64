// Package trafilatura provides a go-trafilatura based implementation of
// pressgate.Extractor, as an alternative extraction engine to readability.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pressgate/pressgate"
)

// Ensure Extractor implements pressgate.Extractor at compile time.
var _ pressgate.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main article content.
func (e *Extractor) Extract(rawHTML, pageURL string) (*pressgate.Article, error) {
	if rawHTML == "" {
		return nil, pressgate.Errorf(pressgate.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if parsed, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = parsed
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pressgate.Article{
		Title:       result.Metadata.Title,
		TextContent: result.ContentText,
		Byline:      result.Metadata.Author,
		SiteName:    result.Metadata.Sitename,
	}, nil
}

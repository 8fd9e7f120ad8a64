// Package readability provides a go-readability based implementation of
// pressgate.Extractor.
package readability

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pressgate/pressgate"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pressgate.Extractor at compile time.
var _ pressgate.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main article content of an
// HTML document from navigation, ads, and boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns the main article content. pageURL
// resolves relative references; an unparseable pageURL is tolerated and
// extraction proceeds without a base URL.
func (e *Extractor) Extract(rawHTML, pageURL string) (*pressgate.Article, error) {
	if rawHTML == "" {
		return nil, pressgate.Errorf(pressgate.EINVALID, "empty HTML input")
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	article, err := readability.FromDocument(doc, base)
	if err != nil {
		return nil, err
	}

	result := &pressgate.Article{
		Title:       article.Title,
		TextContent: article.TextContent,
		Byline:      article.Byline,
		SiteName:    article.SiteName,
	}
	fillFromMeta(result, rawHTML)

	return result, nil
}

// fillFromMeta backfills byline and site name from document meta tags when
// readability could not determine them.
func fillFromMeta(article *pressgate.Article, rawHTML string) {
	if article.Byline != "" && article.SiteName != "" {
		return
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return
	}

	if article.SiteName == "" {
		article.SiteName = strings.TrimSpace(doc.Find(`meta[property="og:site_name"]`).AttrOr("content", ""))
	}
	if article.Byline == "" {
		article.Byline = strings.TrimSpace(doc.Find(`meta[name="author"]`).AttrOr("content", ""))
	}
}

package pressgate

// Article holds the structured output of readability extraction: the main
// readable content of an HTML document with navigation, ads, and
// boilerplate removed.
type Article struct {
	// Title is the document title from page metadata.
	Title string

	// TextContent is the plain text of the main content node.
	TextContent string

	// Byline is the author attribution, empty if unknown.
	Byline string

	// SiteName is the publisher or site name, empty if unknown.
	SiteName string
}

// Extractor isolates the main readable content of an HTML document.
type Extractor interface {
	// Extract parses raw HTML and returns the main article content.
	// pageURL is the document's source URL, used to resolve relative
	// references during parsing. A document with no identifiable article
	// returns an error.
	Extract(html, pageURL string) (*Article, error)
}

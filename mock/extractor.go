package mock

import "github.com/pressgate/pressgate"

var _ pressgate.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pressgate.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*pressgate.Article, error)
}

func (e *Extractor) Extract(html, pageURL string) (*pressgate.Article, error) {
	return e.ExtractFn(html, pageURL)
}

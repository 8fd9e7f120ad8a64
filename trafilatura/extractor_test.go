package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/pressgate/pressgate"
	"github.com/pressgate/pressgate/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage() string {
	var paragraphs strings.Builder
	for i := 0; i < 8; i++ {
		paragraphs.WriteString("<p>Body text long enough for the extractor to score this block as the main content of the document.</p>")
	}
	return `<!DOCTYPE html>
<html>
<head><title>Trafilatura Test Page</title></head>
<body>
<nav><a href="/">Navigation Link</a></nav>
<article>` + paragraphs.String() + `</article>
</body>
</html>`
}

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := trafilatura.NewExtractor()
	_, err := ext.Extract("", "https://example.com/a")

	require.Error(t, err)
	assert.Equal(t, pressgate.EINVALID, pressgate.ErrorCode(err))
}

func TestExtractor_ExtractsTextContent(t *testing.T) {
	t.Parallel()

	ext := trafilatura.NewExtractor()
	article, err := ext.Extract(testPage(), "https://example.com/a")

	require.NoError(t, err)
	assert.Contains(t, article.TextContent, "main content of the document")
	assert.NotContains(t, article.TextContent, "Navigation Link")
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	ext := trafilatura.NewExtractor()
	article, err := ext.Extract(testPage(), "https://example.com/a")

	require.NoError(t, err)
	assert.Contains(t, article.Title, "Trafilatura Test Page")
}

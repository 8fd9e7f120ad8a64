// Package fs provides file-based mirroring of fetched articles.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressgate/pressgate"
)

// URLToPath converts an article URL to a relative mirror file path.
// Example: https://example.com/news/story → example.com/news/story.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Hostname() == "" {
		return "", pressgate.Errorf(pressgate.EINVALID, "URL has no hostname: %q", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	// Root or trailing slash becomes index.md in that directory.
	if path == "" {
		return filepath.Join(u.Hostname(), "index.md"), nil
	}
	if strings.HasSuffix(path, "/") {
		return filepath.Join(u.Hostname(), path, "index.md"), nil
	}

	return filepath.Join(u.Hostname(), path+".md"), nil
}

// FormatArticle formats a mirrored article with YAML frontmatter.
func FormatArticle(rec *pressgate.ArticleRecord) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(rec.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(rec.Title)
	if rec.SiteName != "" {
		b.WriteString("\nsite: ")
		b.WriteString(rec.SiteName)
	}
	if rec.Byline != "" {
		b.WriteString("\nbyline: ")
		b.WriteString(rec.Byline)
	}
	b.WriteString("\nfetched: ")
	b.WriteString(rec.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(rec.Content)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements pressgate.ArticleWriter at compile time.
var _ pressgate.ArticleWriter = (*Writer)(nil)

// Writer mirrors successful articles as markdown files under a base
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle writes a successful record to disk as a markdown file.
// Failed or paywalled records are rejected; there is nothing to mirror.
func (w *Writer) WriteArticle(ctx context.Context, rec *pressgate.ArticleRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if !rec.Success {
		return pressgate.Errorf(pressgate.EINVALID, "cannot mirror failed fetch of %q", rec.URL)
	}

	relPath, err := URLToPath(rec.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatArticle(rec)), 0644)
}

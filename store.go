package pressgate

import (
	"context"
	"time"
)

// ArticleRecord is a persisted pipeline outcome. The mirroring layer stores
// one record per processed URL; the core pipeline itself has no persistence
// responsibility.
type ArticleRecord struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Byline    string `json:"byline,omitempty"`
	SiteName  string `json:"siteName,omitempty"`
	Success   bool   `json:"success"`
	Paywalled bool   `json:"paywalled"`
	Error     string `json:"error,omitempty"`

	// ContentHash is a hex-encoded hash of Content, set by the store.
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ArticleRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "article record URL required")
	}
	return nil
}

// NewArticleRecord builds a record from a pipeline result.
func NewArticleRecord(url string, res *ArticleResult) *ArticleRecord {
	return &ArticleRecord{
		URL:       url,
		Title:     res.Title,
		Content:   res.Content,
		Excerpt:   res.Excerpt,
		Byline:    res.Byline,
		SiteName:  res.SiteName,
		Success:   res.Success,
		Paywalled: res.PaywallDetected,
		Error:     res.Error,
	}
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID        *string `json:"id"`
	URL       *string `json:"url"`
	Success   *bool   `json:"success"`
	Paywalled *bool   `json:"paywalled"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleStore persists pipeline outcomes.
type ArticleStore interface {
	// SaveArticle stores a new record, assigning its ID, ContentHash, and
	// FetchedAt.
	SaveArticle(ctx context.Context, rec *ArticleRecord) error

	// FindArticleByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindArticleByID(ctx context.Context, id string) (*ArticleRecord, error)

	// FindArticles retrieves records matching the filter, most recent first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*ArticleRecord, error)

	// DeleteArticle permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleWriter writes successful articles to a mirror destination.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, rec *ArticleRecord) error
}

package pressgate

import "context"

// Content bounds applied by the pipeline. Content is truncated to
// MaxContentLen; the excerpt is the first ExcerptLen bytes of content.
const (
	MaxContentLen = 8000
	ExcerptLen    = 500
)

// ShortContentLen is the threshold below which extracted content is
// considered suspiciously short. Short content that also carries gate
// language is classified as a paywall-truncated article.
const ShortContentLen = 500

// ArticleResult is the outcome of one pipeline invocation. It is always
// fully populated and never mutated after construction; every failure path
// is captured here as data rather than as an error crossing the public
// boundary.
type ArticleResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`

	Byline   string `json:"byline,omitempty"`
	SiteName string `json:"siteName,omitempty"`

	// Success is true iff usable content was produced. When true, Content
	// is non-empty and at most MaxContentLen bytes.
	Success bool `json:"success"`

	// PaywallDetected is true iff the failure is attributed specifically to
	// a paywall or access-gate signal. Success is always false when this is
	// true.
	PaywallDetected bool `json:"paywallDetected"`

	// Error holds a human-readable diagnostic, present iff Success is false.
	Error string `json:"error,omitempty"`
}

// ArticleFetcher is the single entry point of the system: fetch a URL,
// extract its readable article content, and classify paywall outcomes.
//
// Implementations never return an error; all failures are folded into the
// returned ArticleResult.
type ArticleFetcher interface {
	FetchArticleContent(ctx context.Context, url string) *ArticleResult
}

// Package pipeline implements the article fetching and paywall
// classification decision sequence: domain denylist, HTTP status policy,
// raw-HTML phrase scanning, readability extraction, content normalization,
// and post-extraction short-content checks, executed in strict order with
// short-circuiting at the first terminal condition.
package pipeline

import (
	"context"
	"fmt"

	"github.com/pressgate/pressgate"
)

// Diagnostics for the fixed failure paths.
const (
	errKnownPaywallDomain = "Known paywall domain"
	errPaywallInContent   = "Paywall detected in content"
	errParseFailure       = "Could not parse article content"
	errShortContent       = "Content too short - likely paywall truncated"
)

// Ensure Pipeline implements pressgate.ArticleFetcher at compile time.
var _ pressgate.ArticleFetcher = (*Pipeline)(nil)

// Pipeline sequences the paywall classification stages over one fetch
// attempt. It holds no mutable state and is safe for concurrent use; any
// concurrency limiting or retry policy belongs to the caller.
type Pipeline struct {
	fetcher   pressgate.Fetcher
	extractor pressgate.Extractor
}

// New creates a Pipeline using the given fetcher and extractor.
func New(fetcher pressgate.Fetcher, extractor pressgate.Extractor) *Pipeline {
	return &Pipeline{fetcher: fetcher, extractor: extractor}
}

// FetchArticleContent runs the full decision sequence for one URL and
// returns a fully populated result. It never returns an error: every
// failure (malformed input, transport error, non-2xx status, parse
// failure, paywall heuristics) is folded into the result record.
func (p *Pipeline) FetchArticleContent(ctx context.Context, url string) *pressgate.ArticleResult {
	// Denylisted publishers short-circuit before any network call.
	if pressgate.IsKnownPaywallDomain(url) {
		return paywallFailure("", errKnownPaywallDomain)
	}

	resp, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return failure(err.Error())
	}
	if terminal := classifyStatus(resp.StatusCode); terminal != nil {
		return terminal
	}

	// Gate language in the raw HTML is authoritative; skip extraction.
	if pressgate.ContainsPaywallPhrase(resp.Body) {
		return paywallFailure("", errPaywallInContent)
	}

	article, err := p.extractor.Extract(resp.Body, url)
	if err != nil || article == nil || article.TextContent == "" {
		// A parse failure is not evidence of a paywall.
		return failure(errParseFailure)
	}

	content := pressgate.NormalizeContent(article.TextContent)
	if content == "" {
		return failure(errParseFailure)
	}

	// Short content carrying gate language is the signature of a paywall
	// that let the headline through. The title is preserved on this path;
	// content and excerpt are cleared.
	if len(content) < pressgate.ShortContentLen && pressgate.ContainsPaywallPhrase(content) {
		return paywallFailure(article.Title, errShortContent)
	}

	return &pressgate.ArticleResult{
		Title:    article.Title,
		Content:  content,
		Excerpt:  pressgate.Excerpt(content),
		Byline:   article.Byline,
		SiteName: article.SiteName,
		Success:  true,
	}
}

// classifyStatus maps an HTTP status code to a terminal result, or nil for
// 2xx responses. 401, 402, and 403 are authoritative access-denial
// signals; any other non-2xx status is a plain HTTP failure.
func classifyStatus(code int) *pressgate.ArticleResult {
	if code >= 200 && code <= 299 {
		return nil
	}
	if pressgate.AccessDeniedStatus(code) {
		return paywallFailure("", fmt.Sprintf("Access denied: HTTP %d", code))
	}
	return failure(fmt.Sprintf("HTTP %d", code))
}

// failure returns a terminal result not attributed to a paywall.
func failure(msg string) *pressgate.ArticleResult {
	return &pressgate.ArticleResult{
		Success:         false,
		PaywallDetected: false,
		Error:           msg,
	}
}

// paywallFailure returns a terminal result attributed to a paywall or
// access gate.
func paywallFailure(title, msg string) *pressgate.ArticleResult {
	return &pressgate.ArticleResult{
		Title:           title,
		Success:         false,
		PaywallDetected: true,
		Error:           msg,
	}
}

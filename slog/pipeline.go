// Package slog provides logging decorators for pressgate interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pressgate/pressgate"
)

// Ensure Pipeline implements pressgate.ArticleFetcher at compile time.
var _ pressgate.ArticleFetcher = (*Pipeline)(nil)

// Pipeline wraps an ArticleFetcher with structured outcome logging.
type Pipeline struct {
	next   pressgate.ArticleFetcher
	logger *slog.Logger
}

// NewPipeline creates a new logging Pipeline decorator.
func NewPipeline(next pressgate.ArticleFetcher, logger *slog.Logger) *Pipeline {
	return &Pipeline{next: next, logger: logger}
}

// FetchArticleContent delegates to the wrapped fetcher and logs the outcome.
func (p *Pipeline) FetchArticleContent(ctx context.Context, url string) *pressgate.ArticleResult {
	begin := time.Now()
	res := p.next.FetchArticleContent(ctx, url)

	attrs := []any{
		"url", url,
		"outcome", outcome(res),
		"duration", time.Since(begin),
	}
	if res.Success {
		p.logger.Info("article fetched", append(attrs, "content_len", len(res.Content))...)
	} else {
		p.logger.Warn("article fetch failed", append(attrs, "error", res.Error)...)
	}

	return res
}

// outcome names the terminal classification for log output.
func outcome(res *pressgate.ArticleResult) string {
	switch {
	case res.Success:
		return "success"
	case res.PaywallDetected:
		return "paywall"
	default:
		return "failure"
	}
}

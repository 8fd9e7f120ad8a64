package mock

import (
	"context"

	"github.com/pressgate/pressgate"
)

var _ pressgate.ArticleFetcher = (*ArticleFetcher)(nil)

// ArticleFetcher is a mock implementation of pressgate.ArticleFetcher.
type ArticleFetcher struct {
	FetchArticleContentFn func(ctx context.Context, url string) *pressgate.ArticleResult
}

func (f *ArticleFetcher) FetchArticleContent(ctx context.Context, url string) *pressgate.ArticleResult {
	return f.FetchArticleContentFn(ctx, url)
}

package mock

import (
	"context"

	"github.com/pressgate/pressgate"
)

var _ pressgate.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of pressgate.ArticleStore.
type ArticleStore struct {
	SaveArticleFn     func(ctx context.Context, rec *pressgate.ArticleRecord) error
	FindArticleByIDFn func(ctx context.Context, id string) (*pressgate.ArticleRecord, error)
	FindArticlesFn    func(ctx context.Context, filter pressgate.ArticleFilter) ([]*pressgate.ArticleRecord, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleStore) SaveArticle(ctx context.Context, rec *pressgate.ArticleRecord) error {
	return s.SaveArticleFn(ctx, rec)
}

func (s *ArticleStore) FindArticleByID(ctx context.Context, id string) (*pressgate.ArticleRecord, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleStore) FindArticles(ctx context.Context, filter pressgate.ArticleFilter) ([]*pressgate.ArticleRecord, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleStore) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

var _ pressgate.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of pressgate.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, rec *pressgate.ArticleRecord) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, rec *pressgate.ArticleRecord) error {
	return w.WriteArticleFn(ctx, rec)
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pressgate/pressgate"
)

// Compile-time interface verification.
var _ pressgate.ArticleStore = (*ArticleService)(nil)

// ArticleService implements pressgate.ArticleStore using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// SaveArticle stores a new record, assigning its ID, ContentHash, and
// FetchedAt.
func (s *ArticleService) SaveArticle(ctx context.Context, rec *pressgate.ArticleRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.FetchedAt = time.Now().UTC()
	rec.ContentHash = hashContent(rec.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, url, title, content, excerpt, byline, site_name, success, paywalled, error, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.Title, rec.Content, rec.Excerpt, rec.Byline, rec.SiteName,
		rec.Success, rec.Paywalled, rec.Error, rec.ContentHash, rec.FetchedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves a record by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*pressgate.ArticleRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, content, excerpt, byline, site_name, success, paywalled, error, content_hash, fetched_at
		FROM articles
		WHERE id = ?
	`, id)

	rec, err := scanArticle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pressgate.Errorf(pressgate.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindArticles retrieves records matching the filter, most recent first.
func (s *ArticleService) FindArticles(ctx context.Context, filter pressgate.ArticleFilter) ([]*pressgate.ArticleRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, content, excerpt, byline, site_name, success, paywalled, error, content_hash, fetched_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Success != nil {
		query.WriteString(" AND success = ?")
		args = append(args, *filter.Success)
	}
	if filter.Paywalled != nil {
		query.WriteString(" AND paywalled = ?")
		args = append(args, *filter.Paywalled)
	}

	query.WriteString(" ORDER BY fetched_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*pressgate.ArticleRecord
	for rows.Next() {
		rec, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteArticle permanently removes a record.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pressgate.Errorf(pressgate.ENOTFOUND, "article not found")
	}
	return nil
}

// scanArticle reads one articles row via the given scan function.
func scanArticle(scan func(dest ...any) error) (*pressgate.ArticleRecord, error) {
	var rec pressgate.ArticleRecord
	var fetchedAt string

	err := scan(&rec.ID, &rec.URL, &rec.Title, &rec.Content, &rec.Excerpt, &rec.Byline,
		&rec.SiteName, &rec.Success, &rec.Paywalled, &rec.Error, &rec.ContentHash, &fetchedAt)
	if err != nil {
		return nil, err
	}

	rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/statside/nfl-middleware/internal/domain/rawfeed"
	qb "github.com/statside/nfl-middleware/internal/platform/querybuilder"
)

type RawFeedRepository struct {
	db *sqlx.DB
}

func NewRawFeedRepository(db *sqlx.DB) *RawFeedRepository {
	return &RawFeedRepository{db: db}
}

// Upsert stores the verbatim payload for one cache key, replacing whatever a
// previous fetch left there. cache_key is the table's primary key.
func (r *RawFeedRepository) Upsert(ctx context.Context, doc rawfeed.Document) error {
	insertModel := rawFeedInsertModel{
		CacheKey:    doc.CacheKey,
		Payload:     doc.Payload,
		LastUpdated: doc.LastUpdated,
	}

	query, args, err := qb.InsertModel("raw_feed_documents", insertModel, `ON CONFLICT (cache_key)
DO UPDATE SET
    payload = EXCLUDED.payload,
    last_updated = EXCLUDED.last_updated`)
	if err != nil {
		return fmt.Errorf("build upsert raw feed query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert raw feed cache_key=%s: %w", doc.CacheKey, err)
	}

	return nil
}

func (r *RawFeedRepository) GetByCacheKey(ctx context.Context, cacheKey string) (rawfeed.Document, bool, error) {
	query, args, err := qb.Select("cache_key", "payload", "last_updated").From("raw_feed_documents").
		Where(qb.Eq("cache_key", cacheKey)).
		Limit(1).
		ToSQL()
	if err != nil {
		return rawfeed.Document{}, false, fmt.Errorf("build select raw feed query: %w", err)
	}

	var row rawFeedTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return rawfeed.Document{}, false, nil
		}
		return rawfeed.Document{}, false, fmt.Errorf("get raw feed cache_key=%s: %w", cacheKey, err)
	}

	return rawfeed.Document{
		CacheKey:    row.CacheKey,
		Payload:     row.Payload,
		LastUpdated: row.LastUpdated,
	}, true, nil
}

type rawFeedTableModel struct {
	CacheKey    string    `db:"cache_key"`
	Payload     string    `db:"payload"`
	LastUpdated time.Time `db:"last_updated"`
}

type rawFeedInsertModel struct {
	CacheKey    string    `db:"cache_key"`
	Payload     string    `db:"payload"`
	LastUpdated time.Time `db:"last_updated"`
}

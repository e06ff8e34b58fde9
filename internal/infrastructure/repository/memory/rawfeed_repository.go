package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/statside/nfl-middleware/internal/domain/rawfeed"
)

// RawFeedRepository keeps raw payloads in memory, one per cache key.
// FailWrites makes Upsert return an error so tests can verify the pipeline
// treats raw-cache failures as non-fatal.
type RawFeedRepository struct {
	mu    sync.RWMutex
	byKey map[string]rawfeed.Document

	FailWrites bool
}

func NewRawFeedRepository() *RawFeedRepository {
	return &RawFeedRepository{
		byKey: make(map[string]rawfeed.Document),
	}
}

func (r *RawFeedRepository) Upsert(_ context.Context, doc rawfeed.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWrites {
		return errors.New("raw feed store is unavailable")
	}

	r.byKey[doc.CacheKey] = doc
	return nil
}

func (r *RawFeedRepository) GetByCacheKey(_ context.Context, cacheKey string) (rawfeed.Document, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.byKey[cacheKey]
	return doc, ok, nil
}

package rawfeed

import "context"

type Repository interface {
	Upsert(ctx context.Context, doc Document) error
	GetByCacheKey(ctx context.Context, cacheKey string) (Document, bool, error)
}

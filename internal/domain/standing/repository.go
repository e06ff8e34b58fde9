package standing

import "context"

// Repository persists the normalized standings projection. A standings row is
// logically keyed by (endpoint key, team abbreviation); reconciliation merges
// the incoming batch into the table and never deletes rows that the feed
// stopped mentioning.
type Repository interface {
	ListByEndpoint(ctx context.Context, endpointKey string) ([]Record, error)
	ReconcileByEndpoint(ctx context.Context, endpointKey string, records []Record) (ReconcileCounts, error)
}

package roster

import "context"

// Repository persists the normalized roster projection keyed by PlayerID.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	Reconcile(ctx context.Context, players []Player) (ReconcileCounts, error)
}

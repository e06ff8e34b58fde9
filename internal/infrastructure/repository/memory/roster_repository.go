package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/statside/nfl-middleware/internal/domain/roster"
)

var errInjectedFailure = errors.New("injected reconcile failure")

// RosterRepository keeps the roster projection in memory keyed by the feed's
// global player id. FailOnPlayerID injects a mid-batch failure for tests.
type RosterRepository struct {
	mu       sync.RWMutex
	byPlayer map[int]roster.Player

	FailOnPlayerID int
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{
		byPlayer: make(map[int]roster.Player),
	}
}

func (r *RosterRepository) List(_ context.Context) ([]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Player, 0, len(r.byPlayer))
	for _, item := range r.byPlayer {
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		if out[i].FirstName != out[j].FirstName {
			return out[i].FirstName < out[j].FirstName
		}
		return out[i].PlayerID < out[j].PlayerID
	})

	return out, nil
}

func (r *RosterRepository) Reconcile(_ context.Context, players []roster.Player) (roster.ReconcileCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := make(map[int]roster.Player, len(r.byPlayer))
	for id, item := range r.byPlayer {
		staged[id] = item
	}

	var counts roster.ReconcileCounts
	for _, player := range players {
		if r.FailOnPlayerID != 0 && player.PlayerID == r.FailOnPlayerID {
			return roster.ReconcileCounts{}, errInjectedFailure
		}

		if _, ok := staged[player.PlayerID]; ok {
			counts.Updated++
		} else {
			counts.Inserted++
		}
		staged[player.PlayerID] = player
	}

	r.byPlayer = staged
	return counts, nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/statside/nfl-middleware/internal/domain/standing"
)

type standingRow struct {
	record standing.Record
	seq    int
}

// StandingRepository keeps the standings projection in memory with the same
// merge semantics as the Postgres implementation. FailOnTeam lets tests
// inject a mid-batch failure to exercise all-or-nothing behavior.
type StandingRepository struct {
	mu         sync.RWMutex
	byEndpoint map[string][]standingRow
	nextSeq    int

	FailOnTeam string
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{
		byEndpoint: make(map[string][]standingRow),
	}
}

func (r *StandingRepository) ListByEndpoint(_ context.Context, endpointKey string) ([]standing.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := append([]standingRow(nil), r.byEndpoint[endpointKey]...)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].record, rows[j].record
		if a.Conference != b.Conference {
			return a.Conference < b.Conference
		}
		if a.Division != b.Division {
			return a.Division < b.Division
		}
		if a.DivisionRank != b.DivisionRank {
			return a.DivisionRank < b.DivisionRank
		}
		return rows[i].seq < rows[j].seq
	})

	out := make([]standing.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.record)
	}

	return out, nil
}

func (r *StandingRepository) ReconcileByEndpoint(_ context.Context, endpointKey string, records []standing.Record) (standing.ReconcileCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stage on a copy so a failed batch leaves the published rows untouched.
	staged := append([]standingRow(nil), r.byEndpoint[endpointKey]...)
	stagedSeq := r.nextSeq

	var counts standing.ReconcileCounts
	for _, record := range records {
		if r.FailOnTeam != "" && record.Team == r.FailOnTeam {
			return standing.ReconcileCounts{}, errInjectedFailure
		}

		updated := false
		for i := range staged {
			if staged[i].record.Team == record.Team {
				staged[i].record = record
				counts.Updated++
				updated = true
				break
			}
		}
		if updated {
			continue
		}

		staged = append(staged, standingRow{record: record, seq: stagedSeq})
		stagedSeq++
		counts.Inserted++
	}

	r.byEndpoint[endpointKey] = staged
	r.nextSeq = stagedSeq
	return counts, nil
}

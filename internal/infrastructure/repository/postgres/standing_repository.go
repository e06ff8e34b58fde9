package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/statside/nfl-middleware/internal/domain/standing"
	qb "github.com/statside/nfl-middleware/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListByEndpoint(ctx context.Context, endpointKey string) ([]standing.Record, error) {
	query, args, err := qb.Select("*").From("standings_parsed").
		Where(qb.Eq("endpoint_key", endpointKey)).
		OrderBy("conference", "division", "division_rank", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings endpoint=%s: %w", endpointKey, err)
	}

	out := make([]standing.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingFromTableModel(row))
	}

	return out, nil
}

// ReconcileByEndpoint merges the incoming batch into the standings table in a
// single transaction: rows already present for (endpoint_key, team) are
// updated in place, new teams are inserted, and teams absent from the batch
// are left untouched. Any failure rolls the whole batch back.
func (r *StandingRepository) ReconcileByEndpoint(ctx context.Context, endpointKey string, records []standing.Record) (standing.ReconcileCounts, error) {
	var counts standing.ReconcileCounts
	if len(records) == 0 {
		return counts, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("begin tx reconcile standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, record := range records {
		existsQuery, existsArgs, err := qb.Select("id").From("standings_parsed").
			Where(qb.Eq("endpoint_key", endpointKey), qb.Eq("team", record.Team)).
			Limit(1).
			ToSQL()
		if err != nil {
			return standing.ReconcileCounts{}, fmt.Errorf("build standings existence query: %w", err)
		}

		var id int64
		err = tx.GetContext(ctx, &id, existsQuery, existsArgs...)
		switch {
		case err == nil:
			query, args, err := standingUpdateQuery(id, record)
			if err != nil {
				return standing.ReconcileCounts{}, fmt.Errorf("build update standing query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return standing.ReconcileCounts{}, fmt.Errorf("update standing endpoint=%s team=%s: %w", endpointKey, record.Team, err)
			}
			counts.Updated++
		case isNotFound(err):
			query, args, err := qb.InsertModel("standings_parsed", standingToInsertModel(endpointKey, record), "")
			if err != nil {
				return standing.ReconcileCounts{}, fmt.Errorf("build insert standing query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return standing.ReconcileCounts{}, fmt.Errorf("insert standing endpoint=%s team=%s: %w", endpointKey, record.Team, err)
			}
			counts.Inserted++
		default:
			return standing.ReconcileCounts{}, fmt.Errorf("check standing endpoint=%s team=%s: %w", endpointKey, record.Team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return standing.ReconcileCounts{}, fmt.Errorf("commit reconcile standings tx: %w", err)
	}

	return counts, nil
}

func standingUpdateQuery(id int64, record standing.Record) (string, []any, error) {
	return qb.Update("standings_parsed").
		Set("season_type", record.SeasonType).
		Set("season", record.Season).
		Set("conference", record.Conference).
		Set("division", record.Division).
		Set("name", record.Name).
		Set("wins", record.Wins).
		Set("losses", record.Losses).
		Set("ties", record.Ties).
		Set("percentage", record.Percentage).
		Set("points_for", record.PointsFor).
		Set("points_against", record.PointsAgainst).
		Set("net_points", record.NetPoints).
		Set("touchdowns", record.Touchdowns).
		Set("division_wins", record.DivisionWins).
		Set("division_losses", record.DivisionLosses).
		Set("division_ties", record.DivisionTies).
		Set("conference_wins", record.ConferenceWins).
		Set("conference_losses", record.ConferenceLosses).
		Set("conference_ties", record.ConferenceTies).
		Set("team_id", record.TeamID).
		Set("global_team_id", record.GlobalTeamID).
		Set("division_rank", record.DivisionRank).
		Set("conference_rank", record.ConferenceRank).
		Set("home_wins", record.HomeWins).
		Set("home_losses", record.HomeLosses).
		Set("home_ties", record.HomeTies).
		Set("away_wins", record.AwayWins).
		Set("away_losses", record.AwayLosses).
		Set("away_ties", record.AwayTies).
		Set("streak", record.Streak).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
}

func standingToInsertModel(endpointKey string, record standing.Record) standingInsertModel {
	return standingInsertModel{
		EndpointKey:      endpointKey,
		SeasonType:       record.SeasonType,
		Season:           record.Season,
		Conference:       record.Conference,
		Division:         record.Division,
		Team:             record.Team,
		Name:             record.Name,
		Wins:             record.Wins,
		Losses:           record.Losses,
		Ties:             record.Ties,
		Percentage:       record.Percentage,
		PointsFor:        record.PointsFor,
		PointsAgainst:    record.PointsAgainst,
		NetPoints:        record.NetPoints,
		Touchdowns:       record.Touchdowns,
		DivisionWins:     record.DivisionWins,
		DivisionLosses:   record.DivisionLosses,
		DivisionTies:     record.DivisionTies,
		ConferenceWins:   record.ConferenceWins,
		ConferenceLosses: record.ConferenceLosses,
		ConferenceTies:   record.ConferenceTies,
		TeamID:           record.TeamID,
		GlobalTeamID:     record.GlobalTeamID,
		DivisionRank:     record.DivisionRank,
		ConferenceRank:   record.ConferenceRank,
		HomeWins:         record.HomeWins,
		HomeLosses:       record.HomeLosses,
		HomeTies:         record.HomeTies,
		AwayWins:         record.AwayWins,
		AwayLosses:       record.AwayLosses,
		AwayTies:         record.AwayTies,
		Streak:           record.Streak,
	}
}

func standingFromTableModel(row standingTableModel) standing.Record {
	return standing.Record{
		SeasonType:       row.SeasonType,
		Season:           row.Season,
		Conference:       row.Conference,
		Division:         row.Division,
		Team:             row.Team,
		Name:             row.Name,
		Wins:             row.Wins,
		Losses:           row.Losses,
		Ties:             row.Ties,
		Percentage:       row.Percentage,
		PointsFor:        row.PointsFor,
		PointsAgainst:    row.PointsAgainst,
		NetPoints:        row.NetPoints,
		Touchdowns:       row.Touchdowns,
		DivisionWins:     row.DivisionWins,
		DivisionLosses:   row.DivisionLosses,
		DivisionTies:     row.DivisionTies,
		ConferenceWins:   row.ConferenceWins,
		ConferenceLosses: row.ConferenceLosses,
		ConferenceTies:   row.ConferenceTies,
		TeamID:           row.TeamID,
		GlobalTeamID:     row.GlobalTeamID,
		DivisionRank:     row.DivisionRank,
		ConferenceRank:   row.ConferenceRank,
		HomeWins:         row.HomeWins,
		HomeLosses:       row.HomeLosses,
		HomeTies:         row.HomeTies,
		AwayWins:         row.AwayWins,
		AwayLosses:       row.AwayLosses,
		AwayTies:         row.AwayTies,
		Streak:           row.Streak,
	}
}

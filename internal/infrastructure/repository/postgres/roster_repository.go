package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/statside/nfl-middleware/internal/domain/roster"
	qb "github.com/statside/nfl-middleware/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) List(ctx context.Context) ([]roster.Player, error) {
	query, args, err := qb.Select("*").From("players_parsed").
		OrderBy("last_name", "first_name", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]roster.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, rosterFromTableModel(row))
	}

	return out, nil
}

// Reconcile merges the incoming roster batch keyed by the feed's global
// player id. The id is global across endpoint keys, so a traded player keeps
// one row and the latest reconciled team code wins. The whole batch commits
// or rolls back together.
func (r *RosterRepository) Reconcile(ctx context.Context, players []roster.Player) (roster.ReconcileCounts, error) {
	var counts roster.ReconcileCounts
	if len(players) == 0 {
		return counts, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("begin tx reconcile players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, player := range players {
		existsQuery, existsArgs, err := qb.Select("id").From("players_parsed").
			Where(qb.Eq("player_id", player.PlayerID)).
			Limit(1).
			ToSQL()
		if err != nil {
			return roster.ReconcileCounts{}, fmt.Errorf("build player existence query: %w", err)
		}

		var id int64
		err = tx.GetContext(ctx, &id, existsQuery, existsArgs...)
		switch {
		case err == nil:
			query, args, err := rosterUpdateQuery(id, player)
			if err != nil {
				return roster.ReconcileCounts{}, fmt.Errorf("build update player query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return roster.ReconcileCounts{}, fmt.Errorf("update player id=%d: %w", player.PlayerID, err)
			}
			counts.Updated++
		case isNotFound(err):
			query, args, err := qb.InsertModel("players_parsed", rosterToInsertModel(player), "")
			if err != nil {
				return roster.ReconcileCounts{}, fmt.Errorf("build insert player query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return roster.ReconcileCounts{}, fmt.Errorf("insert player id=%d: %w", player.PlayerID, err)
			}
			counts.Inserted++
		default:
			return roster.ReconcileCounts{}, fmt.Errorf("check player id=%d: %w", player.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return roster.ReconcileCounts{}, fmt.Errorf("commit reconcile players tx: %w", err)
	}

	return counts, nil
}

func rosterUpdateQuery(id int64, player roster.Player) (string, []any, error) {
	return qb.Update("players_parsed").
		Set("team", player.Team).
		Set("team_id", player.TeamID).
		Set("global_team_id", player.GlobalTeamID).
		Set("number", player.Number).
		Set("first_name", player.FirstName).
		Set("last_name", player.LastName).
		Set("short_name", player.ShortName).
		Set("position", player.Position).
		Set("position_category", player.PositionCategory).
		Set("fantasy_position", player.FantasyPosition).
		Set("status", player.Status).
		Set("active", player.Active).
		Set("height_feet", player.HeightFeet).
		Set("height_inches", player.HeightInches).
		Set("weight", player.Weight).
		Set("birth_date", player.BirthDate).
		Set("college", player.College).
		Set("experience", player.Experience).
		Set("photo_url", player.PhotoURL).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
}

func rosterToInsertModel(player roster.Player) rosterInsertModel {
	return rosterInsertModel{
		PlayerID:         player.PlayerID,
		Team:             player.Team,
		TeamID:           player.TeamID,
		GlobalTeamID:     player.GlobalTeamID,
		Number:           player.Number,
		FirstName:        player.FirstName,
		LastName:         player.LastName,
		ShortName:        player.ShortName,
		Position:         player.Position,
		PositionCategory: player.PositionCategory,
		FantasyPosition:  player.FantasyPosition,
		Status:           player.Status,
		Active:           player.Active,
		HeightFeet:       player.HeightFeet,
		HeightInches:     player.HeightInches,
		Weight:           player.Weight,
		BirthDate:        player.BirthDate,
		College:          player.College,
		Experience:       player.Experience,
		PhotoURL:         player.PhotoURL,
	}
}

func rosterFromTableModel(row rosterTableModel) roster.Player {
	return roster.Player{
		PlayerID:         row.PlayerID,
		Team:             row.Team,
		TeamID:           row.TeamID,
		GlobalTeamID:     row.GlobalTeamID,
		Number:           row.Number,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		ShortName:        row.ShortName,
		Position:         row.Position,
		PositionCategory: row.PositionCategory,
		FantasyPosition:  row.FantasyPosition,
		Status:           row.Status,
		Active:           row.Active,
		HeightFeet:       row.HeightFeet,
		HeightInches:     row.HeightInches,
		Weight:           row.Weight,
		BirthDate:        row.BirthDate,
		College:          row.College,
		Experience:       row.Experience,
		PhotoURL:         row.PhotoURL,
	}
}

package httpapi

import (
	"net/http"
	"strings"

	"github.com/statside/nfl-middleware/internal/domain/standing"
)

type standingDTO struct {
	SeasonType       int     `json:"season_type"`
	Season           int     `json:"season"`
	Conference       string  `json:"conference"`
	Division         string  `json:"division"`
	Team             string  `json:"team"`
	Name             string  `json:"name"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Ties             int     `json:"ties"`
	Percentage       float64 `json:"percentage"`
	PointsFor        int     `json:"points_for"`
	PointsAgainst    int     `json:"points_against"`
	NetPoints        int     `json:"net_points"`
	Touchdowns       int     `json:"touchdowns"`
	DivisionWins     int     `json:"division_wins"`
	DivisionLosses   int     `json:"division_losses"`
	DivisionTies     int     `json:"division_ties"`
	ConferenceWins   int     `json:"conference_wins"`
	ConferenceLosses int     `json:"conference_losses"`
	ConferenceTies   int     `json:"conference_ties"`
	TeamID           int     `json:"team_id"`
	GlobalTeamID     int     `json:"global_team_id"`
	DivisionRank     int     `json:"division_rank"`
	ConferenceRank   int     `json:"conference_rank"`
	HomeWins         int     `json:"home_wins"`
	HomeLosses       int     `json:"home_losses"`
	HomeTies         int     `json:"home_ties"`
	AwayWins         int     `json:"away_wins"`
	AwayLosses       int     `json:"away_losses"`
	AwayTies         int     `json:"away_ties"`
	Streak           int     `json:"streak"`
}

func (h *Handler) ListStandingsBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandingsBySeason")
	defer span.End()

	season := r.PathValue("season")
	records, err := h.standingService.ListBySeason(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	if wantsXML(r) {
		writeStandingsXML(ctx, w, records)
		return
	}

	items := make([]standingDTO, 0, len(records))
	for _, record := range records {
		items = append(items, standingToDTO(record))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func wantsXML(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("format")), "xml")
}

func standingToDTO(record standing.Record) standingDTO {
	return standingDTO{
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

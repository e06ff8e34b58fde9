package httpapi

import (
	"net/http"

	"github.com/statside/nfl-middleware/internal/domain/roster"
)

type playerDTO struct {
	PlayerID         int    `json:"player_id"`
	Team             string `json:"team"`
	TeamID           int    `json:"team_id"`
	GlobalTeamID     int    `json:"global_team_id"`
	Number           int    `json:"number"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	ShortName        string `json:"short_name"`
	Position         string `json:"position"`
	PositionCategory string `json:"position_category"`
	FantasyPosition  string `json:"fantasy_position"`
	Status           string `json:"status"`
	Active           bool   `json:"active"`
	HeightFeet       int    `json:"height_feet"`
	HeightInches     int    `json:"height_inches"`
	Weight           int    `json:"weight"`
	BirthDate        string `json:"birth_date"`
	College          string `json:"college"`
	Experience       int    `json:"experience"`
	PhotoURL         string `json:"photo_url"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.rosterService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if wantsXML(r) {
		writePlayersXML(ctx, w, players)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, player := range players {
		items = append(items, playerToDTO(player))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func playerToDTO(player roster.Player) playerDTO {
	return playerDTO{
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

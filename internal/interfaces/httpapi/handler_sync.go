package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/statside/nfl-middleware/internal/usecase"
)

type syncResultDTO struct {
	CacheKey      string `json:"cache_key"`
	Records       int    `json:"records"`
	Inserted      int    `json:"inserted"`
	Updated       int    `json:"updated"`
	RawCacheSaved bool   `json:"raw_cache_saved"`
}

type syncStandingsResultDTO struct {
	syncResultDTO
	Rows []standingDTO `json:"rows"`
}

type syncPlayersResultDTO struct {
	syncResultDTO
	Rows []playerDTO `json:"rows"`
}

type resyncRequestDTO struct {
	Seasons    []string `json:"seasons" validate:"omitempty,dive,seasonkey"`
	SyncData   []string `json:"sync_data" validate:"required,min=1"`
	MaxWorkers int      `json:"max_workers" validate:"omitempty,gte=0,lte=16"`
}

func (h *Handler) SyncStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncStandings")
	defer span.End()

	season := r.PathValue("season")
	result, err := h.syncService.SyncStandings(ctx, season)
	if err != nil {
		h.logger.ErrorContext(ctx, "standings sync failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]standingDTO, 0, len(result.Standings))
	for _, record := range result.Standings {
		rows = append(rows, standingToDTO(record))
	}
	writeSuccess(ctx, w, http.StatusOK, syncStandingsResultDTO{
		syncResultDTO: syncResultToDTO(result),
		Rows:          rows,
	})
}

func (h *Handler) SyncPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncPlayers")
	defer span.End()

	result, err := h.syncService.SyncPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "players sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]playerDTO, 0, len(result.Players))
	for _, player := range result.Players {
		rows = append(rows, playerToDTO(player))
	}
	writeSuccess(ctx, w, http.StatusOK, syncPlayersResultDTO{
		syncResultDTO: syncResultToDTO(result),
		Rows:          rows,
	})
}

func (h *Handler) RunResync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunResync")
	defer span.End()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	var req resyncRequestDTO
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.syncService.Resync(ctx, usecase.ResyncInput{
		Seasons:    req.Seasons,
		SyncData:   req.SyncData,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "resync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func syncResultToDTO(result usecase.SyncResult) syncResultDTO {
	return syncResultDTO{
		CacheKey:      result.CacheKey,
		Records:       result.Records,
		Inserted:      result.Inserted,
		Updated:       result.Updated,
		RawCacheSaved: result.RawCacheSaved,
	}
}

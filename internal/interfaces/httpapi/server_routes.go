package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings/{season}", handler.ListStandingsBySeason)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/standings/{season}/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SyncStandings)))
	mux.Handle("POST /v1/players/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SyncPlayers)))
	mux.Handle("POST /v1/internal/sync/resync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunResync)))
}

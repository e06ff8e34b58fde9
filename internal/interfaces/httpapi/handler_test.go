package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/statside/nfl-middleware/internal/domain/roster"
	"github.com/statside/nfl-middleware/internal/domain/standing"
	"github.com/statside/nfl-middleware/internal/infrastructure/repository/memory"
	"github.com/statside/nfl-middleware/internal/platform/logging"
	"github.com/statside/nfl-middleware/internal/usecase"
)

const testJobToken = "job-token"

type stubFeedClient struct {
	standings map[string][]byte
	players   []byte
}

func (c *stubFeedClient) FetchStandings(_ context.Context, season string) ([]byte, error) {
	return c.standings[season], nil
}

func (c *stubFeedClient) FetchPlayers(context.Context) ([]byte, error) {
	return c.players, nil
}

type testEnv struct {
	router       http.Handler
	standingRepo *memory.StandingRepository
	rosterRepo   *memory.RosterRepository
}

func newTestEnv(client usecase.FeedClient) *testEnv {
	rawRepo := memory.NewRawFeedRepository()
	standingRepo := memory.NewStandingRepository()
	rosterRepo := memory.NewRosterRepository()

	syncService := usecase.NewFeedSyncService(client, rawRepo, standingRepo, rosterRepo, logging.NewNop(), []string{"2024REG"}, 2)
	handler := NewHandler(
		syncService,
		usecase.NewStandingService(standingRepo),
		usecase.NewRosterService(rosterRepo),
		logging.NewNop(),
	)
	router := NewRouter(handler, logging.NewNop(), []string{"*"}, testJobToken)

	return &testEnv{router: router, standingRepo: standingRepo, rosterRepo: rosterRepo}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) googleResponseEnvelope {
	t.Helper()
	var envelope googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("unexpected apiVersion: %s", envelope.APIVersion)
	}
	return envelope
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(&stubFeedClient{})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	decodeEnvelope(t, rec)
}

func TestListStandingsBySeason(t *testing.T) {
	env := newTestEnv(&stubFeedClient{})
	_, err := env.standingRepo.ReconcileByEndpoint(context.Background(), "Standings2024REG", []standing.Record{
		{Conference: "AFC", Division: "East", DivisionRank: 1, Team: "BUF", Wins: 13},
		{Conference: "AFC", Division: "East", DivisionRank: 2, Team: "MIA", Wins: 11},
	})
	if err != nil {
		t.Fatalf("seed standings: %v", err)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings/2024REG", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec)

	items, ok := envelope.Data.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("want 2 standings rows, got %#v", envelope.Data)
	}
	first, _ := items[0].(map[string]any)
	if first["team"] != "BUF" {
		t.Fatalf("unexpected first row: %#v", first)
	}
}

func TestListStandingsRejectsBadSeason(t *testing.T) {
	env := newTestEnv(&stubFeedClient{})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings/banana", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Status != "INVALID_ARGUMENT" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}

func TestListStandingsAsXML(t *testing.T) {
	env := newTestEnv(&stubFeedClient{})
	_, err := env.standingRepo.ReconcileByEndpoint(context.Background(), "Standings2024REG", []standing.Record{
		{Conference: "AFC", Division: "East", DivisionRank: 1, Team: "BUF", Wins: 13},
	})
	if err != nil {
		t.Fatalf("seed standings: %v", err)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings/2024REG?format=xml", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<ArrayOfStanding>") || !strings.Contains(body, "<Team>BUF</Team>") {
		t.Fatalf("unexpected xml body: %s", body)
	}
}

func TestListPlayers(t *testing.T) {
	env := newTestEnv(&stubFeedClient{})
	_, err := env.rosterRepo.Reconcile(context.Background(), []roster.Player{
		{PlayerID: 2, FirstName: "Patrick", LastName: "Mahomes", Team: "KC"},
		{PlayerID: 1, FirstName: "Josh", LastName: "Allen", Team: "BUF"},
	})
	if err != nil {
		t.Fatalf("seed roster: %v", err)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	items, ok := envelope.Data.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("want 2 players, got %#v", envelope.Data)
	}
	first, _ := items[0].(map[string]any)
	if first["last_name"] != "Allen" {
		t.Fatalf("players must come back ordered by last name: %#v", first)
	}
}

func TestSyncStandingsRequiresJobToken(t *testing.T) {
	env := newTestEnv(&stubFeedClient{})

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/standings/2024REG/sync", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestSyncStandingsEndToEnd(t *testing.T) {
	payload := `<?xml version="1.0" encoding="utf-8"?><ArrayOfStanding xmlns="http://tempuri.org/">
		<Standing><Conference>AFC</Conference><Division>East</Division><Team>BUF</Team><Wins>13</Wins><DivisionRank>1</DivisionRank></Standing>
	</ArrayOfStanding>`
	env := newTestEnv(&stubFeedClient{standings: map[string][]byte{"2024REG": []byte(payload)}})

	req := httptest.NewRequest(http.MethodPost, "/v1/standings/2024REG/sync", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec)
	data, _ := envelope.Data.(map[string]any)
	if data["cache_key"] != "Standings2024REG" {
		t.Fatalf("unexpected sync result: %#v", data)
	}
	if data["inserted"] != float64(1) {
		t.Fatalf("unexpected inserted count: %#v", data)
	}
	rows, _ := data["rows"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected one projection row in sync response, got %#v", data["rows"])
	}
	if row, _ := rows[0].(map[string]any); row["team"] != "BUF" {
		t.Fatalf("unexpected row in sync response: %#v", rows[0])
	}
}

func TestSyncStandingsBadPayloadMapsToBadGateway(t *testing.T) {
	env := newTestEnv(&stubFeedClient{standings: map[string][]byte{"2024REG": []byte("<wat></wat>")}})

	req := httptest.NewRequest(http.MethodPost, "/v1/standings/2024REG/sync", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Errors[0].Reason != "badUpstreamPayload" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}

func TestRunResync(t *testing.T) {
	payload := `<?xml version="1.0" encoding="utf-8"?><ArrayOfPlayer xmlns="http://tempuri.org/">
		<Player><PlayerID>14536</PlayerID><Team>KC</Team><FirstName>Patrick</FirstName><LastName>Mahomes</LastName></Player>
	</ArrayOfPlayer>`
	env := newTestEnv(&stubFeedClient{players: []byte(payload)})

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/sync/resync", strings.NewReader(`{"sync_data":["players"]}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec)
	data, _ := envelope.Data.(map[string]any)
	if data["success_count"] != float64(1) {
		t.Fatalf("unexpected resync result: %#v", data)
	}
}

func TestRunResyncRejectsBadBody(t *testing.T) {
	env := newTestEnv(&stubFeedClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/sync/resync", strings.NewReader(`{"sync_data":[]}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
}

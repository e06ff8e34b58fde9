package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/statside/nfl-middleware/internal/infrastructure/repository/memory"
	"github.com/statside/nfl-middleware/internal/platform/logging"
)

type feedClientStub struct {
	standings map[string][]byte
	players   []byte

	standingsErr error
	playersErr   error

	standingsCalls int
	playersCalls   int
}

func (c *feedClientStub) FetchStandings(_ context.Context, season string) ([]byte, error) {
	c.standingsCalls++
	if c.standingsErr != nil {
		return nil, c.standingsErr
	}
	return c.standings[season], nil
}

func (c *feedClientStub) FetchPlayers(context.Context) ([]byte, error) {
	c.playersCalls++
	if c.playersErr != nil {
		return nil, c.playersErr
	}
	return c.players, nil
}

func standingsXML(rows ...string) []byte {
	out := `<?xml version="1.0" encoding="utf-8"?><ArrayOfStanding xmlns="http://tempuri.org/">`
	for _, row := range rows {
		out += row
	}
	return []byte(out + `</ArrayOfStanding>`)
}

func standingRow(team string, wins int, divisionRank int) string {
	return fmt.Sprintf(`<Standing>
		<SeasonType>1</SeasonType><Season>2024</Season>
		<Conference>AFC</Conference><Division>East</Division>
		<Team>%s</Team><Name>%s Club</Name>
		<Wins>%d</Wins><Losses>%d</Losses><Ties>0</Ties>
		<DivisionRank>%d</DivisionRank><ConferenceRank>%d</ConferenceRank>
	</Standing>`, team, team, wins, 17-wins, divisionRank, divisionRank)
}

func playersXML(rows ...string) []byte {
	out := `<?xml version="1.0" encoding="utf-8"?><ArrayOfPlayer xmlns="http://tempuri.org/">`
	for _, row := range rows {
		out += row
	}
	return []byte(out + `</ArrayOfPlayer>`)
}

func playerRow(playerID int, team, first, last string) string {
	return fmt.Sprintf(`<Player>
		<PlayerID>%d</PlayerID><Team>%s</Team>
		<FirstName>%s</FirstName><LastName>%s</LastName>
		<Position>QB</Position><Active>true</Active>
	</Player>`, playerID, team, first, last)
}

func newSyncFixture(client *feedClientStub) (*FeedSyncService, *memory.RawFeedRepository, *memory.StandingRepository, *memory.RosterRepository) {
	rawRepo := memory.NewRawFeedRepository()
	standingRepo := memory.NewStandingRepository()
	rosterRepo := memory.NewRosterRepository()
	svc := NewFeedSyncService(client, rawRepo, standingRepo, rosterRepo, logging.NewNop(), []string{"2024REG"}, 2)
	return svc, rawRepo, standingRepo, rosterRepo
}

func TestSyncStandingsFreshInsert(t *testing.T) {
	client := &feedClientStub{standings: map[string][]byte{
		"2024REG": standingsXML(standingRow("BUF", 13, 1), standingRow("MIA", 11, 2), standingRow("NYJ", 7, 3)),
	}}
	svc, rawRepo, standingRepo, _ := newSyncFixture(client)

	result, err := svc.SyncStandings(context.Background(), "2024REG")
	if err != nil {
		t.Fatalf("sync standings: %v", err)
	}

	if result.CacheKey != "Standings2024REG" {
		t.Fatalf("unexpected cache key: %s", result.CacheKey)
	}
	if result.Records != 3 || result.Inserted != 3 || result.Updated != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if !result.RawCacheSaved {
		t.Fatal("raw cache write should succeed")
	}
	if len(result.Standings) != 3 || result.Standings[0].Team != "BUF" || result.Standings[0].Wins != 13 {
		t.Fatalf("unexpected rows in sync result: %+v", result.Standings)
	}

	doc, ok, err := rawRepo.GetByCacheKey(context.Background(), "Standings2024REG")
	if err != nil || !ok {
		t.Fatalf("raw payload not cached: ok=%v err=%v", ok, err)
	}
	if doc.Payload != string(client.standings["2024REG"]) {
		t.Fatal("raw payload must be stored verbatim")
	}

	rows, err := standingRepo.ListByEndpoint(context.Background(), "Standings2024REG")
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(rows) != 3 || rows[0].Team != "BUF" || rows[1].Team != "MIA" || rows[2].Team != "NYJ" {
		t.Fatalf("unexpected projection order: %+v", rows)
	}
}

func TestSyncStandingsMergesWithoutDeleting(t *testing.T) {
	client := &feedClientStub{standings: map[string][]byte{
		"2024REG": standingsXML(standingRow("BUF", 10, 1), standingRow("MIA", 9, 2)),
	}}
	svc, _, standingRepo, _ := newSyncFixture(client)

	if _, err := svc.SyncStandings(context.Background(), "2024REG"); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	// Next payload updates BUF, adds NE, and no longer mentions MIA.
	client.standings["2024REG"] = standingsXML(standingRow("BUF", 11, 1), standingRow("NE", 4, 4))

	result, err := svc.SyncStandings(context.Background(), "2024REG")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if result.Inserted != 1 || result.Updated != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}

	rows, err := standingRepo.ListByEndpoint(context.Background(), "Standings2024REG")
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unseen rows must survive the merge, got %d rows", len(rows))
	}
	byTeam := make(map[string]int, len(rows))
	for _, row := range rows {
		byTeam[row.Team] = row.Wins
	}
	if byTeam["BUF"] != 11 {
		t.Fatalf("BUF wins not updated: %d", byTeam["BUF"])
	}
	if byTeam["MIA"] != 9 {
		t.Fatalf("MIA row changed despite being absent from the feed: %d", byTeam["MIA"])
	}
}

func TestSyncStandingsIdempotent(t *testing.T) {
	client := &feedClientStub{standings: map[string][]byte{
		"2024REG": standingsXML(standingRow("BUF", 13, 1), standingRow("MIA", 11, 2)),
	}}
	svc, _, _, _ := newSyncFixture(client)

	if _, err := svc.SyncStandings(context.Background(), "2024REG"); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	result, err := svc.SyncStandings(context.Background(), "2024REG")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if result.Inserted != 0 || result.Updated != 2 {
		t.Fatalf("replaying the same payload must update in place: %+v", result)
	}
}

func TestSyncStandingsSeasonValidation(t *testing.T) {
	svc, _, _, _ := newSyncFixture(&feedClientStub{})

	for _, season := range []string{"", "2024", "24REG", "2024reg", "2024PRE", "2024REGX"} {
		if _, err := svc.SyncStandings(context.Background(), season); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("season %q: want ErrInvalidInput, got %v", season, err)
		}
	}
}

func TestSyncStandingsInvalidDocument(t *testing.T) {
	client := &feedClientStub{standings: map[string][]byte{
		"2024REG": []byte("<ArrayOfStanding><Standing></ArrayOfStanding>"),
	}}
	svc, rawRepo, _, _ := newSyncFixture(client)

	_, err := svc.SyncStandings(context.Background(), "2024REG")
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("want ErrInvalidDocument, got %v", err)
	}

	// Validation runs before the raw cache write, so a rejected payload is
	// never cached.
	if _, ok, _ := rawRepo.GetByCacheKey(context.Background(), "Standings2024REG"); ok {
		t.Fatal("rejected payload must not reach the raw cache")
	}
}

func TestSyncStandingsWrongRoot(t *testing.T) {
	client := &feedClientStub{standings: map[string][]byte{
		"2024REG": playersXML(playerRow(1, "KC", "Patrick", "Mahomes")),
	}}
	svc, _, _, _ := newSyncFixture(client)

	if _, err := svc.SyncStandings(context.Background(), "2024REG"); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("want ErrInvalidDocument for a players payload, got %v", err)
	}
}

func TestSyncStandingsFetchFailure(t *testing.T) {
	client := &feedClientStub{standingsErr: errors.New("upstream timeout")}
	svc, _, _, _ := newSyncFixture(client)

	if _, err := svc.SyncStandings(context.Background(), "2024REG"); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("want ErrDependencyUnavailable, got %v", err)
	}
}

func TestSyncStandingsRawCacheFailureIsNonFatal(t *testing.T) {
	client := &feedClientStub{standings: map[string][]byte{
		"2024REG": standingsXML(standingRow("BUF", 13, 1)),
	}}
	svc, rawRepo, standingRepo, _ := newSyncFixture(client)
	rawRepo.FailWrites = true

	result, err := svc.SyncStandings(context.Background(), "2024REG")
	if err != nil {
		t.Fatalf("raw cache failure must not fail the sync: %v", err)
	}
	if result.RawCacheSaved {
		t.Fatal("RawCacheSaved must report the failed write")
	}
	if result.Inserted != 1 {
		t.Fatalf("reconcile must still run: %+v", result)
	}

	rows, err := standingRepo.ListByEndpoint(context.Background(), "Standings2024REG")
	if err != nil || len(rows) != 1 {
		t.Fatalf("projection missing after raw cache failure: rows=%d err=%v", len(rows), err)
	}
}

func TestSyncStandingsReconcileRollsBack(t *testing.T) {
	client := &feedClientStub{standings: map[string][]byte{
		"2024REG": standingsXML(standingRow("BUF", 13, 1), standingRow("MIA", 11, 2)),
	}}
	svc, _, standingRepo, _ := newSyncFixture(client)

	if _, err := svc.SyncStandings(context.Background(), "2024REG"); err != nil {
		t.Fatalf("seed sync: %v", err)
	}

	client.standings["2024REG"] = standingsXML(standingRow("BUF", 14, 1), standingRow("MIA", 11, 2))
	standingRepo.FailOnTeam = "MIA"

	if _, err := svc.SyncStandings(context.Background(), "2024REG"); !errors.Is(err, ErrReconcileFailed) {
		t.Fatalf("want ErrReconcileFailed, got %v", err)
	}

	rows, err := standingRepo.ListByEndpoint(context.Background(), "Standings2024REG")
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	for _, row := range rows {
		if row.Team == "BUF" && row.Wins != 13 {
			t.Fatalf("partial batch leaked into the projection: BUF wins=%d", row.Wins)
		}
	}
}

func TestSyncPlayersGlobalIdentity(t *testing.T) {
	client := &feedClientStub{players: playersXML(
		playerRow(14536, "KC", "Patrick", "Mahomes"),
		playerRow(20001, "BUF", "Josh", "Allen"),
	)}
	svc, rawRepo, _, rosterRepo := newSyncFixture(client)

	result, err := svc.SyncPlayers(context.Background())
	if err != nil {
		t.Fatalf("sync players: %v", err)
	}
	if result.CacheKey != PlayersCacheKey || result.Inserted != 2 {
		t.Fatalf("unexpected first sync result: %+v", result)
	}

	// A traded player keeps his id, so the second sync updates rather than
	// inserting a duplicate row.
	client.players = playersXML(
		playerRow(14536, "SF", "Patrick", "Mahomes"),
		playerRow(20001, "BUF", "Josh", "Allen"),
	)

	result, err = svc.SyncPlayers(context.Background())
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if result.Inserted != 0 || result.Updated != 2 {
		t.Fatalf("unexpected second sync result: %+v", result)
	}

	players, err := rosterRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("want 2 players, got %d", len(players))
	}
	// Sorted by last name: Allen before Mahomes.
	if players[0].LastName != "Allen" || players[1].LastName != "Mahomes" {
		t.Fatalf("unexpected roster order: %+v", players)
	}
	if players[1].Team != "SF" {
		t.Fatalf("team change not applied: %s", players[1].Team)
	}

	if _, ok, _ := rawRepo.GetByCacheKey(context.Background(), PlayersCacheKey); !ok {
		t.Fatal("players payload must be cached under the fixed key")
	}
}

func TestSyncPlayersReconcileRollsBack(t *testing.T) {
	client := &feedClientStub{players: playersXML(
		playerRow(14536, "KC", "Patrick", "Mahomes"),
		playerRow(20001, "BUF", "Josh", "Allen"),
	)}
	svc, _, _, rosterRepo := newSyncFixture(client)

	if _, err := svc.SyncPlayers(context.Background()); err != nil {
		t.Fatalf("seed sync: %v", err)
	}

	client.players = playersXML(
		playerRow(14536, "SF", "Patrick", "Mahomes"),
		playerRow(20001, "BUF", "Josh", "Allen"),
	)
	rosterRepo.FailOnPlayerID = 20001

	if _, err := svc.SyncPlayers(context.Background()); !errors.Is(err, ErrReconcileFailed) {
		t.Fatalf("want ErrReconcileFailed, got %v", err)
	}

	players, err := rosterRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	for _, p := range players {
		if p.PlayerID == 14536 && p.Team != "KC" {
			t.Fatalf("partial batch leaked into the roster: team=%s", p.Team)
		}
	}
}

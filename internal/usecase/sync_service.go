package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/statside/nfl-middleware/internal/domain/rawfeed"
	"github.com/statside/nfl-middleware/internal/domain/roster"
	"github.com/statside/nfl-middleware/internal/domain/standing"
	"github.com/statside/nfl-middleware/internal/feed"
	"github.com/statside/nfl-middleware/internal/platform/logging"
)

// PlayersCacheKey is the raw-cache key for the roster feed. The feed is not
// season-scoped, so every sync overwrites the same cached payload.
const PlayersCacheKey = "Players"

var seasonKeyPattern = regexp.MustCompile(`^[0-9]{4}(REG|POST)$`)

// StandingsCacheKey builds the raw-cache key (and parsed-table endpoint key)
// for a season's standings feed, e.g. Standings2024REG.
func StandingsCacheKey(season string) string {
	return "Standings" + season
}

func ValidateSeasonKey(season string) error {
	if !seasonKeyPattern.MatchString(season) {
		return fmt.Errorf("%w: season must match YYYYREG or YYYYPOST, got %q", ErrInvalidInput, season)
	}
	return nil
}

// FeedClient fetches raw XML payloads from the upstream stats provider.
type FeedClient interface {
	FetchStandings(ctx context.Context, season string) ([]byte, error)
	FetchPlayers(ctx context.Context) ([]byte, error)
}

// SyncResult reports one pipeline run. Standings or Players carry the
// post-reconcile projection rows so callers can serve fresh data from the
// sync response itself.
type SyncResult struct {
	CacheKey      string `json:"cache_key"`
	Records       int    `json:"records"`
	Inserted      int    `json:"inserted"`
	Updated       int    `json:"updated"`
	RawCacheSaved bool   `json:"raw_cache_saved"`

	Standings []standing.Record `json:"-"`
	Players   []roster.Player   `json:"-"`
}

// FeedSyncService runs the ingest pipeline: fetch, validate, cache the raw
// payload, then reconcile the parsed rows into the projection tables.
type FeedSyncService struct {
	client       FeedClient
	rawRepo      rawfeed.Repository
	standingRepo standing.Repository
	rosterRepo   roster.Repository
	logger       *logging.Logger

	seasons    []string
	maxWorkers int
	now        func() time.Time
}

func NewFeedSyncService(
	client FeedClient,
	rawRepo rawfeed.Repository,
	standingRepo standing.Repository,
	rosterRepo roster.Repository,
	logger *logging.Logger,
	seasons []string,
	maxWorkers int,
) *FeedSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FeedSyncService{
		client:       client,
		rawRepo:      rawRepo,
		standingRepo: standingRepo,
		rosterRepo:   rosterRepo,
		logger:       logger,
		seasons:      append([]string(nil), seasons...),
		maxWorkers:   maxWorkers,
		now:          time.Now,
	}
}

func (s *FeedSyncService) SyncStandings(ctx context.Context, season string) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedSyncService.SyncStandings")
	defer span.End()

	if err := ValidateSeasonKey(season); err != nil {
		return SyncResult{}, err
	}
	if s.client == nil || s.standingRepo == nil {
		return SyncResult{}, fmt.Errorf("%w: feed sync is not fully configured", ErrDependencyUnavailable)
	}

	payload, err := s.client.FetchStandings(ctx, season)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: fetch standings season=%s: %v", ErrDependencyUnavailable, season, err)
	}

	doc, err := feed.ParseDocument(payload)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: standings season=%s: %v", ErrInvalidDocument, season, err)
	}
	if doc.Kind() != feed.KindStandings {
		return SyncResult{}, fmt.Errorf("%w: standings season=%s: unexpected root %s", ErrInvalidDocument, season, doc.Root())
	}

	cacheKey := StandingsCacheKey(season)
	rawSaved := s.storeRawPayload(ctx, cacheKey, payload)

	records := doc.Standings()
	counts, err := s.standingRepo.ReconcileByEndpoint(ctx, cacheKey, records)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: standings endpoint=%s: %v", ErrReconcileFailed, cacheKey, err)
	}

	rows, err := s.standingRepo.ListByEndpoint(ctx, cacheKey)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: read standings endpoint=%s: %v", ErrStorageUnavailable, cacheKey, err)
	}

	result := SyncResult{
		CacheKey:      cacheKey,
		Records:       len(records),
		Inserted:      counts.Inserted,
		Updated:       counts.Updated,
		RawCacheSaved: rawSaved,
		Standings:     rows,
	}
	s.logger.InfoContext(ctx, "standings sync completed",
		"cache_key", cacheKey,
		"records", result.Records,
		"inserted", result.Inserted,
		"updated", result.Updated,
	)
	return result, nil
}

func (s *FeedSyncService) SyncPlayers(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedSyncService.SyncPlayers")
	defer span.End()

	if s.client == nil || s.rosterRepo == nil {
		return SyncResult{}, fmt.Errorf("%w: feed sync is not fully configured", ErrDependencyUnavailable)
	}

	payload, err := s.client.FetchPlayers(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: fetch players: %v", ErrDependencyUnavailable, err)
	}

	doc, err := feed.ParseDocument(payload)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: players: %v", ErrInvalidDocument, err)
	}
	if doc.Kind() != feed.KindPlayers {
		return SyncResult{}, fmt.Errorf("%w: players: unexpected root %s", ErrInvalidDocument, doc.Root())
	}

	rawSaved := s.storeRawPayload(ctx, PlayersCacheKey, payload)

	players := doc.Players()
	counts, err := s.rosterRepo.Reconcile(ctx, players)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: players: %v", ErrReconcileFailed, err)
	}

	rows, err := s.rosterRepo.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: read players: %v", ErrStorageUnavailable, err)
	}

	result := SyncResult{
		CacheKey:      PlayersCacheKey,
		Records:       len(players),
		Inserted:      counts.Inserted,
		Updated:       counts.Updated,
		RawCacheSaved: rawSaved,
		Players:       rows,
	}
	s.logger.InfoContext(ctx, "players sync completed",
		"cache_key", PlayersCacheKey,
		"records", result.Records,
		"inserted", result.Inserted,
		"updated", result.Updated,
	)
	return result, nil
}

// storeRawPayload writes the verbatim payload to the raw cache. A failed write
// never fails the sync; the reconcile still runs against the parsed rows.
func (s *FeedSyncService) storeRawPayload(ctx context.Context, cacheKey string, payload []byte) bool {
	if s.rawRepo == nil {
		return false
	}

	err := s.rawRepo.Upsert(ctx, rawfeed.Document{
		CacheKey:    cacheKey,
		Payload:     string(payload),
		LastUpdated: s.now().UTC(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "raw payload cache write failed",
			"cache_key", cacheKey,
			"error", err,
		)
		return false
	}
	return true
}

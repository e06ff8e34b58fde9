package app

import (
	"fmt"
	"net/http"

	"github.com/statside/nfl-middleware/external/sportsdata"
	"github.com/statside/nfl-middleware/internal/config"
	"github.com/statside/nfl-middleware/internal/infrastructure/repository/postgres"
	"github.com/statside/nfl-middleware/internal/interfaces/httpapi"
	"github.com/statside/nfl-middleware/internal/platform/logging"
	"github.com/statside/nfl-middleware/internal/platform/resilience"
	"github.com/statside/nfl-middleware/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"

	_ "github.com/lib/pq"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(semconv.DBSystemNamePostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	rawRepo := postgres.NewRawFeedRepository(db)
	standingRepo := postgres.NewStandingRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)

	var feedClient usecase.FeedClient
	if cfg.SportsDataEnabled {
		feedClient = sportsdata.NewClient(sportsdata.ClientConfig{
			BaseURL:    cfg.SportsDataBaseURL,
			APIKey:     cfg.SportsDataAPIKey,
			Timeout:    cfg.SportsDataTimeout,
			MaxRetries: cfg.SportsDataMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SportsDataCircuitEnabled,
				FailureThreshold: cfg.SportsDataCircuitFailureCount,
				OpenTimeout:      cfg.SportsDataCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SportsDataCircuitHalfOpenMaxReq,
			},
		})
	}

	syncSvc := usecase.NewFeedSyncService(
		feedClient,
		rawRepo,
		standingRepo,
		rosterRepo,
		logger,
		cfg.SeasonKeys,
		cfg.ResyncMaxWorkers,
	)
	standingSvc := usecase.NewStandingService(standingRepo)
	rosterSvc := usecase.NewRosterService(rosterRepo)

	handler := httpapi.NewHandler(syncSvc, standingSvc, rosterSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

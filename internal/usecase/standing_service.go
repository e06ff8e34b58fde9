package usecase

import (
	"context"
	"fmt"

	"github.com/statside/nfl-middleware/internal/domain/standing"
)

// StandingService reads the standings projection. Rows come back grouped by
// conference and division, ranked within the division, with first-seen order
// breaking ties.
type StandingService struct {
	repo standing.Repository
}

func NewStandingService(repo standing.Repository) *StandingService {
	return &StandingService{repo: repo}
}

func (s *StandingService) ListBySeason(ctx context.Context, season string) ([]standing.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListBySeason")
	defer span.End()

	if err := ValidateSeasonKey(season); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, fmt.Errorf("%w: standings storage is not configured", ErrStorageUnavailable)
	}

	endpointKey := StandingsCacheKey(season)
	records, err := s.repo.ListByEndpoint(ctx, endpointKey)
	if err != nil {
		return nil, fmt.Errorf("%w: list standings endpoint=%s: %v", ErrStorageUnavailable, endpointKey, err)
	}
	return records, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/statside/nfl-middleware/internal/domain/roster"
)

// RosterService reads the roster projection ordered by last name then first
// name, the way client apps render player lists.
type RosterService struct {
	repo roster.Repository
}

func NewRosterService(repo roster.Repository) *RosterService {
	return &RosterService{repo: repo}
}

func (s *RosterService) ListPlayers(ctx context.Context) ([]roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListPlayers")
	defer span.End()

	if s.repo == nil {
		return nil, fmt.Errorf("%w: roster storage is not configured", ErrStorageUnavailable)
	}

	players, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list players: %v", ErrStorageUnavailable, err)
	}
	return players, nil
}

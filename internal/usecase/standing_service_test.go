package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/statside/nfl-middleware/internal/domain/standing"
	"github.com/statside/nfl-middleware/internal/infrastructure/repository/memory"
)

func TestStandingServiceListBySeason(t *testing.T) {
	repo := memory.NewStandingRepository()
	_, err := repo.ReconcileByEndpoint(context.Background(), "Standings2024REG", []standing.Record{
		{Conference: "NFC", Division: "West", DivisionRank: 1, Team: "SF"},
		{Conference: "AFC", Division: "East", DivisionRank: 2, Team: "MIA"},
		{Conference: "AFC", Division: "East", DivisionRank: 1, Team: "BUF"},
		{Conference: "AFC", Division: "West", DivisionRank: 1, Team: "KC"},
	})
	if err != nil {
		t.Fatalf("seed repo: %v", err)
	}

	svc := NewStandingService(repo)
	rows, err := svc.ListBySeason(context.Background(), "2024REG")
	if err != nil {
		t.Fatalf("list by season: %v", err)
	}

	want := []string{"BUF", "MIA", "KC", "SF"}
	if len(rows) != len(want) {
		t.Fatalf("want %d rows, got %d", len(want), len(rows))
	}
	for i, team := range want {
		if rows[i].Team != team {
			t.Fatalf("row %d: want %s, got %s", i, team, rows[i].Team)
		}
	}
}

func TestStandingServiceRejectsBadSeason(t *testing.T) {
	svc := NewStandingService(memory.NewStandingRepository())

	if _, err := svc.ListBySeason(context.Background(), "2024"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestStandingServiceEmptySeason(t *testing.T) {
	svc := NewStandingService(memory.NewStandingRepository())

	rows, err := svc.ListBySeason(context.Background(), "2030POST")
	if err != nil {
		t.Fatalf("an unsynced season is not an error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("want empty result, got %d rows", len(rows))
	}
}

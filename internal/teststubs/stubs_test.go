package teststubs

import (
	"context"
	"errors"
	"testing"

	"mlb-calendar-feed/internal/domain/schedule"
)

func TestStubProviderReturnsGames(t *testing.T) {
	stub := &StubProvider{Games: []schedule.Game{{GamePk: 1}}}

	games, err := stub.FetchSchedule(context.Background(), 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 1 || games[0].GamePk != 1 {
		t.Fatalf("unexpected games %+v", games)
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("expected 1 call, got %d", stub.Calls.Load())
	}
	if stub.LastSeason.Load() != 2024 {
		t.Fatalf("expected recorded season 2024, got %d", stub.LastSeason.Load())
	}
}

func TestStubProviderReturnsError(t *testing.T) {
	stub := &StubProvider{Err: errors.New("boom")}

	if _, err := stub.FetchSchedule(context.Background(), 0); err == nil {
		t.Fatal("expected error")
	}
}

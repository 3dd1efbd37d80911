package teststubs

import (
	"context"
	"sync/atomic"

	"mlb-calendar-feed/internal/domain/schedule"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	Games []schedule.Game
	Err   error
	Calls atomic.Int32

	// LastSeason records the season argument of the most recent call.
	LastSeason atomic.Int32
}

// FetchSchedule returns the configured games and error while tracking calls.
func (s *StubProvider) FetchSchedule(ctx context.Context, season int) ([]schedule.Game, error) {
	_ = ctx
	s.Calls.Add(1)
	s.LastSeason.Store(int32(season))
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}

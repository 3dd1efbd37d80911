package providers

import (
	"context"

	"mlb-calendar-feed/internal/domain/schedule"
)

// ScheduleProvider defines how upstream schedule data is fetched and normalized.
// The season parameter is a four-digit year selecting the full-year date range
// to fetch; providers should interpret 0 as "the current year".
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, season int) ([]schedule.Game, error)
}

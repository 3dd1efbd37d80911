package fixture

import (
	"context"
	"time"

	"mlb-calendar-feed/internal/domain/schedule"
)

// Provider returns a static schedule useful for local testing and bootstrapping
// without hitting the upstream API.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchSchedule returns a deterministic pair of games: one home, one away.
func (p *Provider) FetchSchedule(ctx context.Context, season int) ([]schedule.Game, error) {
	_ = ctx

	year := season
	if year <= 0 {
		year = p.now().UTC().Year()
	}

	mariners := schedule.Team{ID: 136, Name: "Seattle Mariners", Abbreviation: "SEA"}
	angels := schedule.Team{ID: 108, Name: "Los Angeles Angels", Abbreviation: "LAA"}
	astros := schedule.Team{ID: 117, Name: "Houston Astros", Abbreviation: "HOU"}

	opener := time.Date(year, time.March, 28, 20, 10, 0, 0, time.UTC)

	return []schedule.Game{
		{
			GamePk:        900001,
			GameDate:      opener.Format(time.RFC3339),
			DetailedState: "Scheduled",
			Home:          mariners,
			Away:          angels,
			Venue:         "T-Mobile Park",
		},
		{
			GamePk:        900002,
			GameDate:      opener.AddDate(0, 0, 3).Format(time.RFC3339),
			DetailedState: "Scheduled",
			Home:          astros,
			Away:          mariners,
			Venue:         "Minute Maid Park",
		},
	}, nil
}

package calendar

import (
	"fmt"
	"time"

	"mlb-calendar-feed/internal/domain/schedule"
)

// Every game is rendered as a fixed three-hour window; the upstream schedule
// carries no end times.
const eventDuration = 3 * time.Hour

const postponedPrefix = "[POSTPONED] "

// awayVenueFallback stands in when the upstream omits the host venue on a road game.
const awayVenueFallback = "Away"

// event is the canonical calendar-ready form of one game.
type event struct {
	uid         string
	summary     string
	location    string
	description string
	start       time.Time
	end         time.Time
}

// mapRecord normalizes one schedule record into an event. Records without a
// date are not mapped; callers skip them before getting here.
func (b *Builder) mapRecord(g schedule.Game) (event, error) {
	start, err := time.Parse(time.RFC3339, g.GameDate)
	if err != nil {
		return event{}, fmt.Errorf("game %s: parsing gameDate %q: %w", g.UID(), g.GameDate, err)
	}

	var summary, location, description string
	if g.Home.ID == b.cfg.TeamID {
		summary = "vs. " + g.Away.Abbreviation
		location = b.cfg.HomeVenue
		description = fmt.Sprintf("%s vs %s", b.cfg.TeamName, g.Away.Name)
	} else {
		summary = "@ " + g.Home.Abbreviation
		venue := g.Venue
		if venue == "" {
			venue = awayVenueFallback
		}
		location = fmt.Sprintf("%s, %s", venue, g.Home.Name)
		description = fmt.Sprintf("%s @ %s", b.cfg.TeamName, g.Home.Name)
	}

	if g.IsPostponed() {
		summary = postponedPrefix + summary
	}

	return event{
		uid:         g.UID(),
		summary:     summary,
		location:    location,
		description: description,
		start:       start.UTC(),
		end:         start.UTC().Add(eventDuration),
	}, nil
}

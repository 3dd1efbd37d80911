package statsapi

import (
	"strings"

	"mlb-calendar-feed/internal/domain/schedule"
)

// flattenSchedule collapses the dates/games envelope into one record list,
// preserving upstream order.
func flattenSchedule(payload scheduleResponse) []schedule.Game {
	records := make([]schedule.Game, 0)
	for _, day := range payload.Dates {
		for _, g := range day.Games {
			records = append(records, mapGame(g))
		}
	}
	return records
}

func mapGame(g gameResponse) schedule.Game {
	return schedule.Game{
		GamePk:        g.GamePk,
		GameDate:      g.GameDate,
		DetailedState: g.Status.DetailedState,
		Home:          mapTeam(g.Teams.Home.Team),
		Away:          mapTeam(g.Teams.Away.Team),
		Venue:         g.Teams.Home.Venue.Name,
	}
}

func mapTeam(t teamResponse) schedule.Team {
	abbr := t.Abbreviation
	if abbr == "" {
		abbr = fallbackAbbreviation(t.Name)
	}
	return schedule.Team{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: abbr,
	}
}

// fallbackAbbreviation derives an abbreviation when the upstream omits one:
// the first three letters of the team name, upper-cased.
func fallbackAbbreviation(name string) string {
	if name == "" {
		name = "UNK"
	}
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

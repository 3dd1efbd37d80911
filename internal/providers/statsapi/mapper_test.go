package statsapi

import "testing"

func TestMapTeamKeepsUpstreamAbbreviation(t *testing.T) {
	team := mapTeam(teamResponse{ID: 136, Name: "Seattle Mariners", Abbreviation: "SEA"})
	if team.Abbreviation != "SEA" {
		t.Fatalf("expected SEA, got %s", team.Abbreviation)
	}
}

func TestMapTeamFallbackAbbreviation(t *testing.T) {
	team := mapTeam(teamResponse{ID: 108, Name: "Los Angeles Angels"})
	if team.Abbreviation != "LOS" {
		t.Fatalf("expected LOS, got %s", team.Abbreviation)
	}
}

func TestFallbackAbbreviation(t *testing.T) {
	cases := map[string]string{
		"Seattle Mariners": "SEA",
		"ab":               "AB",
		"":                 "UNK",
	}
	for name, want := range cases {
		if got := fallbackAbbreviation(name); got != want {
			t.Fatalf("name %q: expected %s, got %s", name, want, got)
		}
	}
}

func TestFlattenSchedulePreservesUpstreamOrder(t *testing.T) {
	payload := scheduleResponse{
		Dates: []dateResponse{
			{Games: []gameResponse{{GamePk: 1}, {GamePk: 2}}},
			{Games: []gameResponse{{GamePk: 3}}},
		},
	}

	records := flattenSchedule(payload)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []int64{1, 2, 3} {
		if records[i].GamePk != want {
			t.Fatalf("position %d: expected gamePk %d, got %d", i, want, records[i].GamePk)
		}
	}
}

func TestMapGameCarriesVenueAndStatus(t *testing.T) {
	g := mapGame(gameResponse{
		GamePk:   9,
		GameDate: "2024-05-01T19:05:00Z",
		Status:   statusResponse{DetailedState: "Cancelled"},
		Teams: teamsResponse{
			Home: sideResponse{
				Team:  teamResponse{ID: 117, Name: "Houston Astros", Abbreviation: "HOU"},
				Venue: venueResponse{Name: "Minute Maid Park"},
			},
			Away: sideResponse{
				Team: teamResponse{ID: 136, Name: "Seattle Mariners", Abbreviation: "SEA"},
			},
		},
	})

	if g.Venue != "Minute Maid Park" {
		t.Fatalf("unexpected venue %s", g.Venue)
	}
	if !g.IsPostponed() {
		t.Fatal("expected cancelled game to count as postponed")
	}
	if g.Home.ID != 117 || g.Away.ID != 136 {
		t.Fatalf("unexpected teams %+v / %+v", g.Home, g.Away)
	}
}

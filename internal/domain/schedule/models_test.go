package schedule

import "testing"

func TestGameUID(t *testing.T) {
	g := Game{GamePk: 745804}
	if got := g.UID(); got != "745804" {
		t.Fatalf("expected uid 745804, got %s", got)
	}
}

func TestGameHasDate(t *testing.T) {
	if (Game{}).HasDate() {
		t.Fatal("expected HasDate to be false without a date")
	}
	if !(Game{GameDate: "2024-03-28T20:10:00Z"}).HasDate() {
		t.Fatal("expected HasDate to be true with a date")
	}
}

func TestGameIsPostponed(t *testing.T) {
	cases := []struct {
		state string
		want  bool
	}{
		{"Postponed", true},
		{"Cancelled", true},
		{"Scheduled", false},
		{"Final", false},
		{"", false},
	}
	for _, tc := range cases {
		g := Game{DetailedState: tc.state}
		if got := g.IsPostponed(); got != tc.want {
			t.Fatalf("state %q: expected %v, got %v", tc.state, tc.want, got)
		}
	}
}

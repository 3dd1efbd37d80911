package schedule

import "strconv"

// Statuses reported by the upstream schedule that mean a game will not be
// played at its listed time.
const (
	StatePostponed = "Postponed"
	StateCancelled = "Cancelled"
)

// Team identifies one side of a game as reported by the upstream schedule.
type Team struct {
	ID           int
	Name         string
	Abbreviation string
}

// Game is one normalized schedule record, flattened out of the upstream
// dates/games envelope. GameDate stays a string at this layer; an empty value
// means the upstream omitted it and the record carries no usable start time.
type Game struct {
	GamePk        int64
	GameDate      string
	DetailedState string
	Home          Team
	Away          Team
	// Venue is the home side's venue name when the hydrate directive supplied
	// one; empty otherwise.
	Venue string
}

// UID returns the game's feed-wide unique identifier, the upstream gamePk as
// text. Calendar consumers deduplicate events on this value.
func (g Game) UID() string {
	return strconv.FormatInt(g.GamePk, 10)
}

// HasDate reports whether the record carries a start time.
func (g Game) HasDate() bool {
	return g.GameDate != ""
}

// IsPostponed reports whether the game's status means it will not be played
// as scheduled.
func (g Game) IsPostponed() bool {
	return g.DetailedState == StatePostponed || g.DetailedState == StateCancelled
}

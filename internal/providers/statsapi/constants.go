package statsapi

import "time"

const providerName = "statsapi"

const (
	defaultBaseURL = "https://statsapi.mlb.com"
	schedulePath   = "/api/v1/schedule"

	// MLB's sport code for baseball.
	sportID = "1"
	// Ask the upstream to embed team and venue details inline so a season's
	// feed does not need follow-up lookups per game.
	hydrateDirective = "team,venue"

	defaultTeamID      = 136
	defaultHTTPTimeout = 10 * time.Second
)

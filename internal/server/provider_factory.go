package server

import (
	"log/slog"
	"net/http"
	"strings"

	"mlb-calendar-feed/internal/config"
	"mlb-calendar-feed/internal/providers"
	"mlb-calendar-feed/internal/providers/fixture"
	"mlb-calendar-feed/internal/providers/statsapi"
)

// providerFactory assembles the schedule provider selected by configuration.
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture":
		return fixture.New()
	default:
		return statsapi.NewClient(statsapi.Config{
			BaseURL: cfg.StatsAPI.BaseURL,
			TeamID:  cfg.Feed.TeamID,
			HTTPClient: &http.Client{
				Timeout: cfg.StatsAPI.Timeout,
			},
		})
	}
}

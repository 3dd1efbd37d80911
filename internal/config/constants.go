package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envStatsAPIBase = "STATSAPI_BASE_URL"
	envFetchTimeout = "STATSAPI_TIMEOUT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultProvider    = "statsapi"
	defaultMetricsPort = "9090"
	// Upstream calls are request-scoped; keep them bounded so a slow upstream
	// cannot hang the feed handler.
	defaultFetchTimeout = 10 * Duration(time.Second)
)

// Feed identity. The feed serves exactly one team; these are compiled-in and
// flow through Config so tests can exercise the pipeline with other values.
const (
	// TeamID is the MLB stats API id for the Seattle Mariners.
	TeamID          = 136
	teamName        = "Seattle Mariners"
	feedDisplayName = "Mariners (Live)"
	homeVenueName   = "T-Mobile Park"
	feedProdID      = "-//Mariners Schedule//mxm.dk//"
	feedFilename    = "mariners_live.ics"
	// Hint for subscribing clients on how often to re-poll the feed.
	feedRefreshInterval = "PT1H"

	defaultStatsAPIBase = "https://statsapi.mlb.com"
)

package config

// StatsAPIConfig controls how the statsapi provider reaches the upstream
// schedule endpoint.
type StatsAPIConfig struct {
	BaseURL string
	Timeout Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsAPIBase, defaultStatsAPIBase),
		Timeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
	}
}

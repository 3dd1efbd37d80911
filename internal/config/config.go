package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Feed     FeedConfig
	StatsAPI StatsAPIConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Feed:     loadFeed(),
		StatsAPI: loadStatsAPI(),
		Metrics:  loadMetrics(),
	}
}

package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Fantasy      FantasyConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotsConfig
	History      HistoryConfig
	Cache        CacheConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Fantasy:      loadFantasy(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshots(),
		History:      loadHistory(),
		Cache:        loadCache(),
	}
}

package config

// SnapshotsConfig controls on-disk persistence of confirmed squads.
// Retention is measured in gameweeks kept per user. AdminToken guards the
// admin refresh endpoint; when empty the endpoint is not mounted.
type SnapshotsConfig struct {
	BasePath           string
	RetentionGameweeks int
	AdminToken         string
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		BasePath:           envOrDefault(envSnapshotsBasePath, defaultSnapshotsBasePath),
		RetentionGameweeks: intEnvOrDefault(envSnapshotsRetention, defaultSnapshotsRetention),
		AdminToken:         envOrDefault(envAdminToken, ""),
	}
}

// HistoryConfig controls the transfer-history recorder. An empty DBPath
// selects the no-op recorder.
type HistoryConfig struct {
	DBPath string
}

func loadHistory() HistoryConfig {
	return HistoryConfig{
		DBPath: envOrDefault(envHistoryDBPath, ""),
	}
}

// CacheConfig controls the optional Redis player-details cache. An empty
// RedisURL disables caching.
type CacheConfig struct {
	RedisURL string
	TTL      Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		RedisURL: envOrDefault(envCacheRedisURL, ""),
		TTL:      durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}

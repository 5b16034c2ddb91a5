package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"

	envFantasyBaseURL     = "FANTASY_API_BASE_URL"
	envFantasyToken       = "FANTASY_API_TOKEN"
	envFantasyTimeout     = "FANTASY_API_TIMEOUT"
	envFantasyUserAgent   = "FANTASY_API_USER_AGENT"
	envFantasyMaxRetries  = "FANTASY_API_MAX_RETRIES"
	envFantasyRetryWait   = "FANTASY_API_RETRY_WAIT"
	envFantasyRateLimit   = "FANTASY_API_RATE_LIMIT_INTERVAL"
	envFantasyRateLimited = "FANTASY_API_RATE_LIMITED"

	envMetricsEnabled      = "METRICS_ENABLED"
	envMetricsPort         = "METRICS_PORT"
	envMetricsServiceName  = "METRICS_SERVICE_NAME"
	envMetricsOtlpEndpoint = "METRICS_OTLP_ENDPOINT"
	envMetricsOtlpInsecure = "METRICS_OTLP_INSECURE"

	envSnapshotsBasePath  = "SNAPSHOTS_BASE_PATH"
	envSnapshotsRetention = "SNAPSHOTS_RETENTION_GAMEWEEKS"
	envAdminToken         = "ADMIN_TOKEN"

	envHistoryDBPath = "HISTORY_DB_PATH"

	envCacheRedisURL = "CACHE_REDIS_URL"
	envCacheTTL      = "CACHE_TTL"
)

const (
	defaultPort         = "8080"
	defaultPollInterval = 5 * time.Minute

	defaultFantasyBaseURL   = "https://fantasy.example.com/api"
	defaultFantasyTimeout   = 10 * time.Second
	defaultFantasyUserAgent = "fantasy-squad-service/1.0"
	defaultMaxRetries       = 3
	defaultRetryWait        = 200 * time.Millisecond

	defaultMetricsPort        = "9090"
	defaultMetricsServiceName = "fantasy-squad-service"

	defaultSnapshotsBasePath  = "data/snapshots"
	defaultSnapshotsRetention = 6

	defaultCacheTTL = 5 * time.Minute
)

package config

import "time"

// FantasyConfig controls how the upstream game backend is reached.
// ServiceToken authenticates background pool fetches; user-facing calls
// forward the caller's own bearer token instead.
type FantasyConfig struct {
	BaseURL           string
	ServiceToken      string
	Timeout           time.Duration
	UserAgent         string
	MaxRetries        int
	RetryWait         time.Duration
	RateLimited       bool
	RateLimitInterval time.Duration
}

func loadFantasy() FantasyConfig {
	return FantasyConfig{
		BaseURL:           envOrDefault(envFantasyBaseURL, defaultFantasyBaseURL),
		ServiceToken:      envOrDefault(envFantasyToken, ""),
		Timeout:           durationEnvOrDefault(envFantasyTimeout, defaultFantasyTimeout),
		UserAgent:         envOrDefault(envFantasyUserAgent, defaultFantasyUserAgent),
		MaxRetries:        intEnvOrDefault(envFantasyMaxRetries, defaultMaxRetries),
		RetryWait:         durationEnvOrDefault(envFantasyRetryWait, defaultRetryWait),
		RateLimited:       boolEnvOrDefault(envFantasyRateLimited, false),
		RateLimitInterval: durationEnvOrDefault(envFantasyRateLimit, time.Minute),
	}
}

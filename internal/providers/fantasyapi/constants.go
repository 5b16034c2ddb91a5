package fantasyapi

import "time"

const (
	// ProviderName labels this upstream in logs and metrics.
	ProviderName = "fantasyapi"

	defaultBaseURL     = "https://fantasy.example.com/api"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "fantasy-squad-service/1.0"
)
